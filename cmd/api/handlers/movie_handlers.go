package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-review/cmd/api/services"
)

// SearchMoviesHandler godoc
// @Summary      영화 검색
// @Description  TMDB search/movie 결과를 그대로의 필드 이름으로 돌려준다.
// @Tags         movies
// @Produce      json
// @Param        q     query     string  true   "검색어"
// @Param        page  query     int     false  "페이지 (1부터)"
// @Success      200   {object}  dto.MoviePageDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /search [get]
func SearchMoviesHandler(svc *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Search(c.Request.Context(), c.Query("q"), queryInt(c, "page", 1))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// DiscoverMoviesHandler godoc
// @Summary      조건별 영화 탐색
// @Description  장르/연도/평점/인기도/언어/배우/정렬 조건으로 TMDB discover 를 호출한다.
// @Description  actor 는 인물 검색의 첫 번째 결과로 바뀌며, 찾지 못하면 빈 결과를 돌려준다.
// @Tags         movies
// @Produce      json
// @Param        page        query     int     false  "페이지 (1부터)"
// @Param        genre       query     string  false  "TMDB 장르 ID"
// @Param        year        query     string  false  "개봉 연도"
// @Param        rating      query     string  false  "최소 평점 (vote_average.gte)"
// @Param        popularity  query     string  false  "최소 투표 수 (vote_count.gte)"
// @Param        language    query     string  false  "원어 (ISO 639-1)"
// @Param        actor       query     string  false  "배우 이름"
// @Param        sort        query     string  false  "정렬 (popularity, rating, newest, oldest, title, 또는 TMDB sort_by 값)"
// @Success      200         {object}  dto.MoviePageDTO
// @Failure      500         {object}  dto.ErrorResponseDTO
// @Router       /discover [get]
func DiscoverMoviesHandler(svc *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.DiscoverInput{
			Page:       queryInt(c, "page", 1),
			Genre:      c.Query("genre"),
			Year:       c.Query("year"),
			Rating:     c.Query("rating"),
			Popularity: c.Query("popularity"),
			Language:   c.Query("language"),
			Actor:      c.Query("actor"),
			Sort:       c.Query("sort"),
		}
		out, apiErr := svc.Discover(c.Request.Context(), in)
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListGenresHandler godoc
// @Summary      장르 목록
// @Tags         movies
// @Produce      json
// @Param        language  query     string  false  "언어 (기본 en-US)"
// @Success      200       {object}  dto.GenresResponseDTO
// @Failure      500       {object}  dto.ErrorResponseDTO
// @Router       /genres [get]
func ListGenresHandler(svc *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Genres(c.Request.Context(), c.Query("language"))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// SearchActorsHandler godoc
// @Summary      배우 검색
// @Tags         movies
// @Produce      json
// @Param        query  query     string  true   "배우 이름"
// @Param        page   query     int     false  "페이지 (1부터)"
// @Success      200    {object}  dto.ActorsResponseDTO
// @Failure      400    {object}  dto.ErrorResponseDTO
// @Failure      500    {object}  dto.ErrorResponseDTO
// @Router       /actors [get]
func SearchActorsHandler(svc *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Actors(c.Request.Context(), c.Query("query"), queryInt(c, "page", 1))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
