package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"movie-review/cmd/api/dto"
	"movie-review/cmd/api/services"
)

// respondError 는 상세 원인을 gin 에러로 남기고(요청 로그에 포함), 응답에는 일반 메시지만 싣는다.
func respondError(c *gin.Context, apiErr *services.APIError) {
	if apiErr.Cause != nil {
		_ = c.Error(apiErr)
	}
	c.JSON(apiErr.StatusCode, dto.ErrorResponseDTO{Error: apiErr.Message})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
