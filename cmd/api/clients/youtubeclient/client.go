package youtubeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-review/cmd/api/httpclient"
	"movie-review/config"
)

// Client는 YouTube Data API v3 의 search / commentThreads / videos 를 호출한다.
type Client struct {
	base   *httpclient.BaseClient
	apiKey string
}

var ErrMissingAPIKey = errors.New("youtubeclient: missing YOUTUBE_API_KEY")

// commentThreads 가 한 페이지에 돌려주는 최대 개수
const maxCommentsPerPage = 100

// HTTPError 는 YouTube 가 2xx 이외의 상태를 돌려준 경우다.
// Reason 은 error.errors[0].reason (예: commentsDisabled, quotaExceeded) 이다.
type HTTPError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("youtube request failed: status=%d reason=%s message=%q", e.StatusCode, e.Reason, e.Message)
}

func New(cfg config.YouTubeConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		base: httpclient.NewBaseClient(cfg.BaseURL, httpclient.Config{
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}),
		apiKey: cfg.APIKey,
	}, nil
}

// -------------------- Search --------------------

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type Video struct {
	VideoID      string               `json:"videoId"`
	Title        string               `json:"title"`
	ChannelTitle string               `json:"channelTitle"`
	PublishedAt  time.Time            `json:"publishedAt"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string               `json:"title"`
			ChannelTitle string               `json:"channelTitle"`
			PublishedAt  time.Time            `json:"publishedAt"`
			Thumbnails   map[string]Thumbnail `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideos 는 type=video 로 검색한다. maxResults 는 YouTube 제한에 맞춰 1~50 이다.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) ([]Video, error) {
	if maxResults < 1 {
		maxResults = 1
	}
	if maxResults > 50 {
		maxResults = 50
	}
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(maxResults))

	var out searchResponse
	if err := c.get(ctx, "/search", q, &out); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			Thumbnails:   item.Snippet.Thumbnails,
		})
	}
	return videos, nil
}

// -------------------- Comments --------------------

type Comment struct {
	CommentID   string    `json:"commentId"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	LikeCount   int       `json:"likeCount"`
	PublishedAt time.Time `json:"publishedAt"`
	ReplyCount  int       `json:"replyCount"`
}

type commentThreadsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID      string `json:"id"`
		Snippet struct {
			TotalReplyCount int `json:"totalReplyCount"`
			TopLevelComment struct {
				Snippet struct {
					TextOriginal      string    `json:"textOriginal"`
					AuthorDisplayName string    `json:"authorDisplayName"`
					LikeCount         int       `json:"likeCount"`
					PublishedAt       time.Time `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

// CommentThreads 는 nextPageToken 이 없어지거나 limit 에 도달할 때까지 최상위 댓글을 가져온다.
func (c *Client) CommentThreads(ctx context.Context, videoID string, limit int) ([]Comment, error) {
	if limit <= 0 {
		return []Comment{}, nil
	}

	comments := make([]Comment, 0, min(limit, maxCommentsPerPage))
	pageToken := ""
	for len(comments) < limit {
		q := url.Values{}
		q.Set("part", "snippet")
		q.Set("videoId", videoID)
		q.Set("maxResults", strconv.Itoa(maxCommentsPerPage))
		q.Set("textFormat", "plainText")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var out commentThreadsResponse
		if err := c.get(ctx, "/commentThreads", q, &out); err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			s := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, Comment{
				CommentID:   item.ID,
				Text:        s.TextOriginal,
				Author:      s.AuthorDisplayName,
				LikeCount:   s.LikeCount,
				PublishedAt: s.PublishedAt,
				ReplyCount:  item.Snippet.TotalReplyCount,
			})
		}

		pageToken = out.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(comments) > limit {
		comments = comments[:limit]
	}
	return comments, nil
}

// -------------------- Videos --------------------

// VideoExists 는 videos?id= 로 영상이 존재하는지 확인한다. API 키 점검 용도다.
func (c *Client) VideoExists(ctx context.Context, videoID string) (bool, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", videoID)

	var out struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := c.get(ctx, "/videos", q, &out); err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

// -------------------- internal --------------------

func (c *Client) get(ctx context.Context, relPath string, q url.Values, out any) error {
	q.Set("key", c.apiKey)

	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, q, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return parseHTTPError(resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube decode %s: %w", relPath, err)
	}
	return nil
}

func parseHTTPError(status int, body []byte) *HTTPError {
	httpErr := &HTTPError{StatusCode: status, Message: string(body)}
	var ytErr struct {
		Error struct {
			Message string `json:"message"`
			Errors  []struct {
				Reason string `json:"reason"`
			} `json:"errors"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &ytErr) == nil {
		if ytErr.Error.Message != "" {
			httpErr.Message = ytErr.Error.Message
		}
		if len(ytErr.Error.Errors) > 0 {
			httpErr.Reason = ytErr.Error.Errors[0].Reason
		}
	}
	return httpErr
}
