package response

import (
	cErr "talentpulse/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

const (
	ContextDataKey    = "data"
	ContextMessageKey = "message"
)

type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// Success 交給 Response middleware 包成統一格式
func Success(c *gin.Context, data any, message ...string) {
	msg := "Request Success"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	c.Set(ContextDataKey, data)
	c.Set(ContextMessageKey, msg)
	c.Abort()
}

// AbortWithError 交給 Recovery middleware 處理
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, errorCode int, msg string, desc string) {
	c.AbortWithStatusJSON(httpCode, Response{
		RequestID:   requestID,
		Code:        errorCode,
		Data:        nil,
		Message:     msg,
		Description: desc,
	})
}

func FailByErr(c *gin.Context, requestID string, err error) {
	v := cErr.From(err)
	Fail(c, requestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
}
