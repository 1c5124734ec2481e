package services

import (
	"context"
	"strings"

	"movie-review/cmd/api/clients/tmdbclient"
	"movie-review/cmd/api/dto"
	"movie-review/cmd/internal/logger"
)

// MovieService 는 TMDB 검색/탐색/장르/배우 조회를 DTO 로 변환한다.
//
// - client 가 nil 이면 TMDB 키가 없는 상태이며 모든 메서드가 500 "Missing TMDB_API_KEY" 를 돌려준다.
type MovieService struct {
	client *tmdbclient.Client
}

func NewMovieService(client *tmdbclient.Client) *MovieService {
	return &MovieService{client: client}
}

// discover 의 sort 파라미터로 허용하는 값. 짧은 별칭도 받는다.
var discoverSortOptions = map[string]string{
	"popularity":                "popularity.desc",
	"popularity.desc":           "popularity.desc",
	"popularity.asc":            "popularity.asc",
	"rating":                    "vote_average.desc",
	"vote_average.desc":         "vote_average.desc",
	"vote_average.asc":          "vote_average.asc",
	"votes":                     "vote_count.desc",
	"vote_count.desc":           "vote_count.desc",
	"vote_count.asc":            "vote_count.asc",
	"newest":                    "primary_release_date.desc",
	"release_date":              "primary_release_date.desc",
	"primary_release_date.desc": "primary_release_date.desc",
	"oldest":                    "primary_release_date.asc",
	"primary_release_date.asc":  "primary_release_date.asc",
	"revenue":                   "revenue.desc",
	"revenue.desc":              "revenue.desc",
	"title":                     "title.asc",
	"title.asc":                 "title.asc",
	"title.desc":                "title.desc",
}

// NormalizeSort 는 허용되지 않은 값이면 빈 문자열을 돌려준다(TMDB 기본 정렬 사용).
func NormalizeSort(raw string) string {
	return discoverSortOptions[strings.ToLower(strings.TrimSpace(raw))]
}

func (s *MovieService) Search(ctx context.Context, query string, page int) (dto.MoviePageDTO, *APIError) {
	if s.client == nil {
		return dto.MoviePageDTO{}, missingTMDBKeyError()
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return dto.MoviePageDTO{}, newBadRequest("missing query")
	}

	resp, err := s.client.SearchMovies(ctx, query, clampPage(page))
	if err != nil {
		apiErr := normalizeTMDBError(err)
		logAPIError("tmdb search failed", apiErr, logger.Fields{"query": query})
		return dto.MoviePageDTO{}, apiErr
	}

	out := mapMoviePage(resp)
	out.Query = query
	return out, nil
}

// DiscoverInput 은 /discover 쿼리 파라미터다.
// Popularity 는 TMDB 에 인기도 하한 필터가 없어 최소 투표 수(vote_count.gte)로 전달한다.
type DiscoverInput struct {
	Page       int
	Genre      string
	Year       string
	Rating     string
	Popularity string
	Language   string
	Actor      string
	Sort       string
}

func (s *MovieService) Discover(ctx context.Context, in DiscoverInput) (dto.MoviePageDTO, *APIError) {
	if s.client == nil {
		return dto.MoviePageDTO{}, missingTMDBKeyError()
	}
	page := clampPage(in.Page)

	params := tmdbclient.DiscoverParams{
		Page:             page,
		GenreID:          in.Genre,
		Year:             in.Year,
		MinVoteAverage:   in.Rating,
		MinVoteCount:     in.Popularity,
		OriginalLanguage: in.Language,
		SortBy:           NormalizeSort(in.Sort),
	}

	if actor := strings.TrimSpace(in.Actor); actor != "" {
		people, err := s.client.SearchPeople(ctx, actor, 1)
		if err != nil {
			apiErr := normalizeTMDBError(err)
			logAPIError("tmdb person search failed", apiErr, logger.Fields{"actor": actor})
			return dto.MoviePageDTO{}, apiErr
		}
		if len(people.Results) == 0 {
			// 배우를 찾지 못하면 필터 없이 검색하지 않고 빈 페이지를 돌려준다.
			return dto.MoviePageDTO{Page: page, Results: []dto.MovieDTO{}}, nil
		}
		params.CastPersonID = people.Results[0].ID
	}

	resp, err := s.client.DiscoverMovies(ctx, params)
	if err != nil {
		apiErr := normalizeTMDBError(err)
		logAPIError("tmdb discover failed", apiErr, logger.Fields{"page": page})
		return dto.MoviePageDTO{}, apiErr
	}
	return mapMoviePage(resp), nil
}

func (s *MovieService) Genres(ctx context.Context, language string) (dto.GenresResponseDTO, *APIError) {
	if s.client == nil {
		return dto.GenresResponseDTO{}, missingTMDBKeyError()
	}

	genres, err := s.client.Genres(ctx, strings.TrimSpace(language))
	if err != nil {
		apiErr := normalizeTMDBError(err)
		logAPIError("tmdb genres failed", apiErr, logger.Fields{"language": language})
		return dto.GenresResponseDTO{}, apiErr
	}

	out := dto.GenresResponseDTO{Genres: make([]dto.GenreDTO, 0, len(genres))}
	for _, g := range genres {
		out.Genres = append(out.Genres, dto.GenreDTO{ID: g.ID, Name: g.Name})
	}
	return out, nil
}

func (s *MovieService) Actors(ctx context.Context, query string, page int) (dto.ActorsResponseDTO, *APIError) {
	if s.client == nil {
		return dto.ActorsResponseDTO{}, missingTMDBKeyError()
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return dto.ActorsResponseDTO{}, newBadRequest("missing query")
	}

	resp, err := s.client.SearchPeople(ctx, query, clampPage(page))
	if err != nil {
		apiErr := normalizeTMDBError(err)
		logAPIError("tmdb actor search failed", apiErr, logger.Fields{"query": query})
		return dto.ActorsResponseDTO{}, apiErr
	}

	out := dto.ActorsResponseDTO{
		Results:      make([]dto.ActorDTO, 0, len(resp.Results)),
		Page:         resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
	for _, p := range resp.Results {
		out.Results = append(out.Results, dto.ActorDTO{
			ID:                 p.ID,
			Name:               p.Name,
			KnownForDepartment: p.KnownForDepartment,
			ProfilePath:        p.ProfilePath,
		})
	}
	return out, nil
}

func mapMoviePage(resp tmdbclient.MoviePage) dto.MoviePageDTO {
	out := dto.MoviePageDTO{
		Page:         resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
		HasNext:      resp.Page < resp.TotalPages,
		HasPrev:      resp.Page > 1,
		Results:      make([]dto.MovieDTO, 0, len(resp.Results)),
	}
	for _, m := range resp.Results {
		genreIDs := m.GenreIDs
		if genreIDs == nil {
			genreIDs = []int{}
		}
		out.Results = append(out.Results, dto.MovieDTO{
			ID:            m.ID,
			Title:         m.Title,
			OriginalTitle: m.OriginalTitle,
			Overview:      m.Overview,
			ReleaseDate:   m.ReleaseDate,
			PosterPath:    m.PosterPath,
			BackdropPath:  m.BackdropPath,
			VoteAverage:   m.VoteAverage,
			VoteCount:     m.VoteCount,
			Popularity:    m.Popularity,
			GenreIDs:      genreIDs,
		})
	}
	return out
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func logAPIError(msg string, apiErr *APIError, fields logger.Fields) {
	if fields == nil {
		fields = logger.Fields{}
	}
	fields["status"] = apiErr.StatusCode
	fields["error_code"] = apiErr.ErrorCode
	if apiErr.Cause != nil {
		fields["error"] = apiErr.Cause.Error()
	}
	logger.ErrorWithFields(msg, fields)
}
