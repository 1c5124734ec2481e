package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-review/cmd/api/services"
)

// SearchYouTubeHandler godoc
// @Summary      YouTube 영상 검색
// @Tags         youtube
// @Produce      json
// @Param        query  query     string  true   "검색어"
// @Param        max    query     int     false  "최대 결과 수 (1~50, 기본 10)"
// @Success      200    {object}  dto.YouTubeSearchResponseDTO
// @Failure      400    {object}  dto.ErrorResponseDTO
// @Failure      500    {object}  dto.ErrorResponseDTO
// @Router       /youtube/search [get]
func SearchYouTubeHandler(svc *services.YouTubeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Search(c.Request.Context(), c.Query("query"), queryInt(c, "max", 0))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// YouTubeCommentsHandler godoc
// @Summary      YouTube 댓글 조회
// @Tags         youtube
// @Produce      json
// @Param        videoId  query     string  true   "영상 ID"
// @Param        limit    query     int     false  "최대 댓글 수 (기본 200)"
// @Success      200      {object}  dto.YouTubeCommentsResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      500      {object}  dto.ErrorResponseDTO
// @Router       /youtube/comments [get]
func YouTubeCommentsHandler(svc *services.YouTubeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Comments(c.Request.Context(), c.Query("videoId"), queryInt(c, "limit", 0))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// YouTubeHealthHandler godoc
// @Summary      YouTube API 상태 확인
// @Description  videoId 가 없으면 키 존재 여부만 확인한다.
// @Tags         youtube
// @Produce      json
// @Param        videoId  query     string  false  "확인할 영상 ID"
// @Success      200      {object}  dto.YouTubeHealthResponseDTO
// @Failure      500      {object}  dto.ErrorResponseDTO
// @Router       /youtube/health [get]
func YouTubeHealthHandler(svc *services.YouTubeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Health(c.Request.Context(), c.Query("videoId"))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
