package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"movie-review/cmd/api/clients/sentimentclient"
	"movie-review/cmd/api/clients/tmdbclient"
	"movie-review/cmd/api/clients/youtubeclient"
	"movie-review/config"
)

// fakeTMDB 는 테스트에 필요한 TMDB 엔드포인트만 흉내 낸다.
type fakeTMDB struct {
	title        string
	reviewPages  [][]tmdbclient.Review
	detailStatus int
	people       []tmdbclient.Person

	mu           sync.Mutex
	reviewCalls  int
	lastDiscover map[string]string
}

func (f *fakeTMDB) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/movie/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "tmdb-test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status_message":"Invalid API key"}`))
			return
		}
		if strings.HasSuffix(r.URL.Path, "/reviews") {
			f.mu.Lock()
			f.reviewCalls++
			f.mu.Unlock()

			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page < 1 || page > max(len(f.reviewPages), 1) {
				page = 1
			}
			var results []tmdbclient.Review
			if len(f.reviewPages) > 0 {
				results = f.reviewPages[page-1]
			}
			writeJSON(w, tmdbclient.ReviewPage{
				ID:         27205,
				Page:       page,
				TotalPages: len(f.reviewPages),
				Results:    results,
			})
			return
		}
		if f.detailStatus != 0 {
			w.WriteHeader(f.detailStatus)
			_, _ = w.Write([]byte(`{"status_message":"boom"}`))
			return
		}
		writeJSON(w, tmdbclient.MovieDetails{ID: 27205, Title: f.title})
	})
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		poster := "/poster.jpg"
		writeJSON(w, tmdbclient.MoviePage{
			Page:         page,
			TotalPages:   3,
			TotalResults: 55,
			Results: []tmdbclient.Movie{{
				ID:            27205,
				Title:         "Inception",
				OriginalTitle: "Inception",
				ReleaseDate:   "2010-07-15",
				PosterPath:    &poster,
				VoteAverage:   8.4,
				VoteCount:     35000,
				Popularity:    92.5,
				GenreIDs:      []int{28, 878},
			}},
		})
	})
	mux.HandleFunc("/discover/movie", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastDiscover = map[string]string{}
		for key := range r.URL.Query() {
			f.lastDiscover[key] = r.URL.Query().Get(key)
		}
		f.mu.Unlock()
		writeJSON(w, tmdbclient.MoviePage{Page: 1, TotalPages: 1, TotalResults: 1, Results: []tmdbclient.Movie{{ID: 1, Title: "A"}}})
	})
	mux.HandleFunc("/search/person", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, tmdbclient.PersonPage{Page: 1, TotalPages: 1, TotalResults: len(f.people), Results: f.people})
	})
	mux.HandleFunc("/genre/movie/list", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"genres": []tmdbclient.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}})
	})
	return mux
}

// fakeYouTube 는 search / commentThreads / videos 를 흉내 낸다.
type fakeYouTube struct {
	videoID       string
	comments      []string
	pageSize      int
	searchStatus  int
	commentStatus int
	videoStatus   int

	mu           sync.Mutex
	lastQuery    string
	commentPages int
}

func (f *fakeYouTube) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastQuery = r.URL.Query().Get("q")
		f.mu.Unlock()
		if f.searchStatus != 0 {
			writeYouTubeError(w, f.searchStatus, "quotaExceeded")
			return
		}
		items := []map[string]any{}
		if f.videoID != "" {
			items = append(items, map[string]any{
				"id": map[string]string{"videoId": f.videoID},
				"snippet": map[string]any{
					"title":        "Official Trailer",
					"channelTitle": "Studio",
					"publishedAt":  "2010-05-10T00:00:00Z",
					"thumbnails":   map[string]any{"default": map[string]any{"url": "https://img/x.jpg", "width": 120, "height": 90}},
				},
			})
		}
		writeJSON(w, map[string]any{"items": items})
	})
	mux.HandleFunc("/commentThreads", func(w http.ResponseWriter, r *http.Request) {
		if f.commentStatus != 0 {
			writeYouTubeError(w, f.commentStatus, "commentsDisabled")
			return
		}
		f.mu.Lock()
		f.commentPages++
		f.mu.Unlock()

		pageSize := f.pageSize
		if pageSize <= 0 {
			pageSize = 100
		}
		start, _ := strconv.Atoi(r.URL.Query().Get("pageToken"))
		end := min(start+pageSize, len(f.comments))
		items := make([]map[string]any, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, map[string]any{
				"id": fmt.Sprintf("c%d", i),
				"snippet": map[string]any{
					"totalReplyCount": 1,
					"topLevelComment": map[string]any{"snippet": map[string]any{
						"textOriginal":      f.comments[i],
						"authorDisplayName": fmt.Sprintf("viewer%d", i),
						"likeCount":         i,
						"publishedAt":       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
					}},
				},
			})
		}
		body := map[string]any{"items": items}
		if end < len(f.comments) {
			body["nextPageToken"] = strconv.Itoa(end)
		}
		writeJSON(w, body)
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		if f.videoStatus != 0 {
			writeYouTubeError(w, f.videoStatus, "keyInvalid")
			return
		}
		items := []map[string]any{}
		if r.URL.Query().Get("id") == f.videoID {
			items = append(items, map[string]any{"id": f.videoID})
		}
		writeJSON(w, map[string]any{"items": items})
	})
	return mux
}

// fakeClassifier 는 /predict_batch 에서 텍스트에 포함된 단어로 라벨을 정한다.
type fakeClassifier struct {
	dropOne bool

	mu       sync.Mutex
	received []string
}

func (f *fakeClassifier) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/predict_batch", func(w http.ResponseWriter, r *http.Request) {
		var req sentimentclient.PredictBatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.received = append([]string(nil), req.Texts...)
		f.mu.Unlock()

		out := make([]map[string]any, 0, len(req.Texts))
		for _, text := range req.Texts {
			label := "Neutral"
			lower := strings.ToLower(text)
			switch {
			case strings.Contains(lower, "great"), strings.Contains(lower, "loved"):
				label = "Positive"
			case strings.Contains(lower, "awful"), strings.Contains(lower, "boring"):
				label = "NEGATIVE"
			}
			out = append(out, map[string]any{"label": label, "max_prob": 0.9})
		}
		if f.dropOne && len(out) > 0 {
			out = out[:len(out)-1]
		}
		writeJSON(w, out)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (f *fakeClassifier) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.received...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeYouTubeError(w http.ResponseWriter, status int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": "request failed: " + reason,
			"errors":  []map[string]string{{"reason": reason}},
		},
	})
}

func newTMDBClient(t *testing.T, srv *httptest.Server) *tmdbclient.Client {
	t.Helper()
	client, err := tmdbclient.New(config.TMDBConfig{
		APIKey:   "tmdb-test-key",
		BaseURL:  srv.URL,
		Language: "en-US",
		Timeout:  5 * time.Second,
	})
	if err != nil {
		t.Fatalf("tmdbclient.New: %v", err)
	}
	return client
}

func newYouTubeClient(t *testing.T, srv *httptest.Server) *youtubeclient.Client {
	t.Helper()
	client, err := youtubeclient.New(config.YouTubeConfig{
		APIKey:  "yt-test-key",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("youtubeclient.New: %v", err)
	}
	return client
}

func newSentimentClient(baseURL string) *sentimentclient.Client {
	return sentimentclient.New(config.SentimentConfig{
		Provider:      config.SentimentProviderHTTP,
		BaseURL:       baseURL,
		Timeout:       5 * time.Second,
		HealthTimeout: time.Second,
	})
}

func review(author, content string) tmdbclient.Review {
	return tmdbclient.Review{ID: author, Author: author, Content: content}
}

func testAppConfig() config.AppConfig {
	return config.Default()
}
