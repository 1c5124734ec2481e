package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"movie-review/cmd/api/clients/tmdbclient"
	"movie-review/cmd/api/clients/youtubeclient"
	"movie-review/cmd/api/preprocess"
)

// Source 는 리뷰 텍스트를 제공한 곳이다.
type Source string

const (
	SourceTMDB    Source = "tmdb"
	SourceYouTube Source = "youtube"
)

// ReviewItem 은 수집된 원문 하나다. 수집 후에는 바뀌지 않는다.
// Content 는 제공자가 돌려준 텍스트 그대로다.
type ReviewItem struct {
	Source  Source
	Author  string
	Content string
}

// VideoContent 는 예고편 영상에서 가져온 댓글과 진단 정보다.
type VideoContent struct {
	VideoID  string
	Query    string
	Comments []ReviewItem
}

// VideoResult 는 영상 경로의 결과다. Err 가 nil 이 아니면 댓글은 0 개로 취급한다.
type VideoResult struct {
	Content VideoContent
	Err     error
}

// Collection 은 한 영화에 대해 수집한 전체 결과다.
type Collection struct {
	MovieID int
	Title   string
	Reviews []ReviewItem
	Video   VideoResult
}

var (
	errTitleUnresolved = errors.New("movie title could not be resolved")
	errNoTrailerFound  = errors.New("no trailer video found")
)

const trailerQuerySuffix = " official trailer"

// ReviewCollectorOptions 는 수집 단계의 한도 값이다.
type ReviewCollectorOptions struct {
	// MinReviewLength 보다 짧은(원문 rune 수 기준) TMDB 리뷰는 버린다.
	MinReviewLength int
	// MaxReviewPages 가 0 이면 total_pages 까지 모두 가져온다.
	MaxReviewPages int
	CommentLimit   int
}

// ReviewCollector 는 TMDB 리뷰와 YouTube 예고편 댓글을 모은다.
type ReviewCollector struct {
	tmdb    *tmdbclient.Client
	youtube *youtubeclient.Client
	opts    ReviewCollectorOptions
}

func NewReviewCollector(tmdb *tmdbclient.Client, youtube *youtubeclient.Client, opts ReviewCollectorOptions) *ReviewCollector {
	if opts.CommentLimit <= 0 {
		opts.CommentLimit = 200
	}
	return &ReviewCollector{tmdb: tmdb, youtube: youtube, opts: opts}
}

// Collect 는 리뷰 목록과 영화 상세(제목)를 동시에 가져온 뒤, 제목이 확인되면 영상 댓글을 가져온다.
// TMDB 키가 없거나 리뷰 조회가 실패하면 에러를 반환하고, 영상 경로 실패는 Video.Err 에만 남긴다.
func (c *ReviewCollector) Collect(ctx context.Context, movieID int) (Collection, error) {
	if c.tmdb == nil {
		return Collection{}, tmdbclient.ErrMissingAPIKey
	}

	var (
		wg         sync.WaitGroup
		reviews    []ReviewItem
		reviewsErr error
		details    tmdbclient.MovieDetails
		detailsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		reviews, reviewsErr = c.fetchReviews(ctx, movieID)
	}()
	go func() {
		defer wg.Done()
		details, detailsErr = c.tmdb.MovieDetails(ctx, movieID)
	}()
	wg.Wait()

	if reviewsErr != nil {
		return Collection{}, reviewsErr
	}

	out := Collection{MovieID: movieID, Reviews: reviews}
	switch {
	case detailsErr != nil:
		out.Video = VideoResult{Err: fmt.Errorf("%w: %w", errTitleUnresolved, detailsErr)}
	case details.Title == "":
		out.Video = VideoResult{Err: errTitleUnresolved}
	default:
		out.Title = details.Title
		out.Video = c.fetchTrailerComments(ctx, details.Title)
	}
	return out, nil
}

// fetchReviews 는 total_pages 까지 순차적으로 페이지를 넘긴다.
func (c *ReviewCollector) fetchReviews(ctx context.Context, movieID int) ([]ReviewItem, error) {
	var items []ReviewItem
	for page, totalPages := 1, 1; page <= totalPages; page++ {
		resp, err := c.tmdb.MovieReviews(ctx, movieID, page)
		if err != nil {
			return nil, err
		}
		totalPages = resp.TotalPages
		if c.opts.MaxReviewPages > 0 && totalPages > c.opts.MaxReviewPages {
			totalPages = c.opts.MaxReviewPages
		}

		for _, r := range resp.Results {
			if preprocess.RuneLen(r.Content) < c.opts.MinReviewLength {
				continue
			}
			items = append(items, ReviewItem{Source: SourceTMDB, Author: r.Author, Content: r.Content})
		}
	}
	return items, nil
}

func (c *ReviewCollector) fetchTrailerComments(ctx context.Context, title string) VideoResult {
	query := title + trailerQuerySuffix
	result := VideoResult{Content: VideoContent{Query: query}}

	if c.youtube == nil {
		result.Err = youtubeclient.ErrMissingAPIKey
		return result
	}

	videos, err := c.youtube.SearchVideos(ctx, query, 1)
	if err != nil {
		result.Err = fmt.Errorf("search trailer: %w", err)
		return result
	}
	if len(videos) == 0 {
		result.Err = errNoTrailerFound
		return result
	}
	result.Content.VideoID = videos[0].VideoID

	comments, err := c.youtube.CommentThreads(ctx, result.Content.VideoID, c.opts.CommentLimit)
	if err != nil {
		result.Err = fmt.Errorf("fetch comments: %w", err)
		return result
	}

	items := make([]ReviewItem, 0, len(comments))
	for _, cm := range comments {
		items = append(items, ReviewItem{Source: SourceYouTube, Author: cm.Author, Content: cm.Text})
	}
	result.Content.Comments = items
	return result
}
