package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-review/cmd/api/services"
)

// HealthHandler godoc
// @Summary      헬스 체크
// @Description  TMDB/YouTube 키 설정 여부와 감성 분류기 상태를 보고한다.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(svc *services.HealthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Check(c.Request.Context()))
	}
}
