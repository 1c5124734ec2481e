package tmdbclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movie-review/cmd/api/httpclient"
	"movie-review/config"
)

// Client는 TMDB v3 API를 호출하는 얇은 클라이언트다.
//
// - api_key 쿼리 파라미터로 인증한다.
// - 응답은 TMDB 필드 이름 그대로 디코딩하고, 외부 응답 형태로의 변환은 services 에서 한다.
type Client struct {
	base     *httpclient.BaseClient
	apiKey   string
	language string
}

var (
	ErrMissingAPIKey   = errors.New("tmdbclient: missing TMDB_API_KEY")
	ErrInvalidMovieID  = errors.New("invalid movie id")
	ErrMovieNotFound   = errors.New("movie not found")
	errEmptyPathSuffix = errors.New("tmdbclient: empty path")
)

// HTTPError 는 TMDB 가 2xx 이외의 상태를 돌려준 경우다.
// StatusMessage 는 TMDB 에러 바디의 status_message 이다.
type HTTPError struct {
	StatusCode    int
	StatusMessage string
	Body          string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("tmdb request failed: status=%d message=%q", e.StatusCode, e.StatusMessage)
}

// New 는 TMDB 키가 없으면 ErrMissingAPIKey 를 반환한다.
func New(cfg config.TMDBConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	language := cfg.Language
	if language == "" {
		language = "en-US"
	}
	return &Client{
		base: httpclient.NewBaseClient(cfg.BaseURL, httpclient.Config{
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}),
		apiKey:   cfg.APIKey,
		language: language,
	}, nil
}

// ParseMovieID 는 경로 파라미터로 받은 movie id 가 양의 정수인지 확인한다.
func ParseMovieID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, ErrInvalidMovieID
	}
	return id, nil
}

// -------------------- Movies --------------------

type Movie struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids"`
}

type MoviePage struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Results      []Movie `json:"results"`
}

type MovieDetails struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	ImdbID        string `json:"imdb_id"`
}

func (c *Client) SearchMovies(ctx context.Context, query string, page int) (MoviePage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("include_adult", "false")

	var out MoviePage
	if err := c.get(ctx, "/search/movie", q, &out); err != nil {
		return MoviePage{}, err
	}
	return out, nil
}

// DiscoverParams 는 /discover/movie 필터다. 비어 있는 값은 전송하지 않는다.
type DiscoverParams struct {
	Page             int
	GenreID          string
	Year             string
	MinVoteAverage   string
	MinVoteCount     string
	OriginalLanguage string
	CastPersonID     int
	SortBy           string
}

func (c *Client) DiscoverMovies(ctx context.Context, params DiscoverParams) (MoviePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("include_adult", "false")
	setIfNotEmpty(q, "with_genres", params.GenreID)
	setIfNotEmpty(q, "primary_release_year", params.Year)
	setIfNotEmpty(q, "vote_average.gte", params.MinVoteAverage)
	setIfNotEmpty(q, "vote_count.gte", params.MinVoteCount)
	setIfNotEmpty(q, "with_original_language", params.OriginalLanguage)
	setIfNotEmpty(q, "sort_by", params.SortBy)
	if params.CastPersonID > 0 {
		q.Set("with_cast", strconv.Itoa(params.CastPersonID))
	}

	var out MoviePage
	if err := c.get(ctx, "/discover/movie", q, &out); err != nil {
		return MoviePage{}, err
	}
	return out, nil
}

func (c *Client) MovieDetails(ctx context.Context, movieID int) (MovieDetails, error) {
	var out MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), url.Values{}, &out); err != nil {
		return MovieDetails{}, err
	}
	return out, nil
}

// -------------------- Reviews --------------------

type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type ReviewPage struct {
	ID           int      `json:"id"`
	Page         int      `json:"page"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
	Results      []Review `json:"results"`
}

func (c *Client) MovieReviews(ctx context.Context, movieID, page int) (ReviewPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var out ReviewPage
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/reviews", movieID), q, &out); err != nil {
		return ReviewPage{}, err
	}
	return out, nil
}

// -------------------- Genres / People --------------------

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Genres 는 language 가 비어 있으면 클라이언트 기본 언어를 사용한다.
func (c *Client) Genres(ctx context.Context, language string) ([]Genre, error) {
	q := url.Values{}
	if language != "" {
		q.Set("language", language)
	}

	var out struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get(ctx, "/genre/movie/list", q, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	KnownForDepartment string  `json:"known_for_department"`
	ProfilePath        *string `json:"profile_path"`
	Popularity         float64 `json:"popularity"`
}

type PersonPage struct {
	Page         int      `json:"page"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
	Results      []Person `json:"results"`
}

func (c *Client) SearchPeople(ctx context.Context, query string, page int) (PersonPage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("include_adult", "false")

	var out PersonPage
	if err := c.get(ctx, "/search/person", q, &out); err != nil {
		return PersonPage{}, err
	}
	return out, nil
}

// -------------------- internal --------------------

func (c *Client) get(ctx context.Context, relPath string, q url.Values, out any) error {
	if relPath == "" {
		return errEmptyPathSuffix
	}
	q.Set("api_key", c.apiKey)
	if !q.Has("language") {
		q.Set("language", c.language)
	}

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
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
		var tmdbErr struct {
			StatusMessage string `json:"status_message"`
		}
		if json.Unmarshal(body, &tmdbErr) == nil {
			httpErr.StatusMessage = tmdbErr.StatusMessage
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", ErrMovieNotFound, httpErr)
		}
		return httpErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb decode %s: %w", relPath, err)
	}
	return nil
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		q.Set(key, value)
	}
}
