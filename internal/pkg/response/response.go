package response

import (
	"RunBriefing/internal/api/dto"
	"RunBriefing/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败返回封装，统一 {"error": "..."} 结构
func Fail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, dto.ErrorDTO{Error: message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		// 未登记的错误不向客户端暴露细节
		code = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, code, "Internal server error")
		return
	}
	Fail(c, code, err.Error())
}
