package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-review/cmd/api/clients/tmdbclient"
	"movie-review/cmd/api/sentiment"
	"movie-review/cmd/api/services"
	"movie-review/config"
)

// newTestEngine 은 키가 없는 구성(TMDB/YouTube 클라이언트 nil)으로 라우터를 만든다.
func newTestEngine(t *testing.T, tmdb *tmdbclient.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	classifier := sentiment.NewVaderClassifier()
	collector := services.NewReviewCollector(tmdb, nil, services.ReviewCollectorOptions{MinReviewLength: 20})

	return New(Services{
		Movies:   services.NewMovieService(tmdb),
		Analysis: services.NewAnalysisService(collector, classifier, services.AnalysisServiceConfig{ServiceName: cfg.ServiceName}),
		YouTube:  services.NewYouTubeService(nil, cfg.YouTube.CommentLimit),
		Health:   services.NewHealthService(cfg, classifier),
	})
}

func doGet(r http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), recorder.Body.String())
	return body
}

func TestMissingKeysAnswer500(t *testing.T) {
	r := newTestEngine(t, nil)

	testCases := []struct {
		target  string
		wantErr string
	}{
		{target: "/search?q=inception", wantErr: "Missing TMDB_API_KEY"},
		{target: "/api/search?q=inception", wantErr: "Missing TMDB_API_KEY"},
		{target: "/discover", wantErr: "Missing TMDB_API_KEY"},
		{target: "/genres", wantErr: "Missing TMDB_API_KEY"},
		{target: "/analyze/27205", wantErr: "Missing TMDB_API_KEY"},
		{target: "/api/analyze/27205", wantErr: "Missing TMDB_API_KEY"},
		{target: "/youtube/comments?videoId=abc", wantErr: "Missing YOUTUBE_API_KEY"},
		{target: "/api/youtube/search?query=abc", wantErr: "Missing YOUTUBE_API_KEY"},
		{target: "/api/youtube/health", wantErr: "Missing YOUTUBE_API_KEY"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.target, func(t *testing.T) {
			recorder := doGet(r, testCase.target)
			assert.Equal(t, http.StatusInternalServerError, recorder.Code)
			assert.Equal(t, testCase.wantErr, decodeBody(t, recorder)["error"])
		})
	}
}

func TestMissingParamsAnswer400(t *testing.T) {
	tmdb, err := tmdbclient.New(config.TMDBConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	require.NoError(t, err)
	r := newTestEngine(t, tmdb)

	for _, target := range []string{"/search", "/api/actors", "/youtube/comments", "/analyze/not-a-number"} {
		t.Run(target, func(t *testing.T) {
			recorder := doGet(r, target)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.NotEmpty(t, decodeBody(t, recorder)["error"])
		})
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestEngine(t, nil)

	for _, target := range []string{"/health", "/api/health"} {
		recorder := doGet(r, target)
		require.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody(t, recorder)
		assert.Equal(t, "movie-review-backend", body["service"])
		env := body["env"].(map[string]any)
		assert.Equal(t, false, env["tmdbConfigured"])
		sentimentBody := body["sentiment"].(map[string]any)
		assert.Equal(t, true, sentimentBody["ok"])
		assert.Equal(t, "vader", sentimentBody["provider"])
		assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
	}
}

func TestAnalyzeRouteNoData(t *testing.T) {
	tmdbSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/movie/27205/reviews" {
			_, _ = w.Write([]byte(`{"id":27205,"page":1,"total_pages":1,"total_results":0,"results":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":27205,"title":"Inception"}`))
	}))
	defer tmdbSrv.Close()

	tmdb, err := tmdbclient.New(config.TMDBConfig{APIKey: "k", BaseURL: tmdbSrv.URL, Timeout: time.Second})
	require.NoError(t, err)
	r := newTestEngine(t, tmdb)

	recorder := doGet(r, "/api/analyze/27205")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "no data", body["summary"])
	assert.Equal(t, float64(0), body["totalReviews"])
	assert.Equal(t, map[string]any{}, body["stats"])
	assert.Equal(t, "TMDB", body["source"])
}
