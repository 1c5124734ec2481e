package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-review/cmd/api/services"
)

// AnalyzeMovieHandler godoc
// @Summary      리뷰 감성 분석
// @Description  TMDB 리뷰와 예고편 YouTube 댓글을 모아 영어로 보이는 텍스트만 분류하고 집계한다.
// @Description  분석할 텍스트가 없으면 summary 는 "no data", stats 는 빈 객체다.
// @Tags         analysis
// @Produce      json
// @Param        movieId  path      int  true  "TMDB movie id"
// @Success      200      {object}  dto.AnalysisResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      404      {object}  dto.ErrorResponseDTO
// @Failure      500      {object}  dto.ErrorResponseDTO
// @Failure      502      {object}  dto.ErrorResponseDTO  "분류 서비스 연결 거부"
// @Router       /analyze/{movieId} [get]
func AnalyzeMovieHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Analyze(c.Request.Context(), c.Param("movieId"))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
