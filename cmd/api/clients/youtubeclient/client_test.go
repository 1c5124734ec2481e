package youtubeclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-review/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(config.YouTubeConfig{APIKey: "yt-secret", BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestSearchVideosClampsMaxResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "video", r.URL.Query().Get("type"))
		assert.Equal(t, "yt-secret", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"items":[
			{"id":{"videoId":"abc"},"snippet":{"title":"Trailer","channelTitle":"Studio","publishedAt":"2010-05-01T00:00:00Z"}},
			{"id":{},"snippet":{"title":"channel result"}}
		]}`))
	})

	videos, err := c.SearchVideos(context.Background(), "inception official trailer", 500)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "abc", videos[0].VideoID)
	assert.Equal(t, 2010, videos[0].PublishedAt.Year())
}

func TestCommentThreadsPaginatesUntilLimit(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		token := r.URL.Query().Get("pageToken")
		next := ""
		if token == "" {
			next = "page-2"
		}
		_, _ = fmt.Fprintf(w, `{"nextPageToken":%q,"items":[`, next)
		for i := 0; i < maxCommentsPerPage; i++ {
			if i > 0 {
				_, _ = w.Write([]byte(","))
			}
			_, _ = fmt.Fprintf(w, `{"id":"c%s-%d","snippet":{"totalReplyCount":1,"topLevelComment":{"snippet":{"textOriginal":"great movie","authorDisplayName":"viewer"}}}}`, token, i)
		}
		_, _ = w.Write([]byte("]}"))
	})

	comments, err := c.CommentThreads(context.Background(), "abc", 150)
	require.NoError(t, err)
	assert.Len(t, comments, 150)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "viewer", comments[0].Author)
	assert.Equal(t, 1, comments[0].ReplyCount)
}

func TestCommentThreadsStopsWithoutNextPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"c1","snippet":{"topLevelComment":{"snippet":{"textOriginal":"only one"}}}}]}`))
	})

	comments, err := c.CommentThreads(context.Background(), "abc", 200)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestHTTPErrorCarriesReason(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The video has disabled comments.","errors":[{"reason":"commentsDisabled"}]}}`))
	})

	_, err := c.CommentThreads(context.Background(), "abc", 10)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.Equal(t, "commentsDisabled", httpErr.Reason)
	assert.Equal(t, "The video has disabled comments.", httpErr.Message)
}

func TestVideoExists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "known" {
			_, _ = w.Write([]byte(`{"items":[{"id":"known"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	found, err := c.VideoExists(context.Background(), "known")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = c.VideoExists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}
