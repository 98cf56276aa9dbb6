package response

import (
	"context"
	"fmt"
	"net/http"

	"botguard-srv/pkg/discord"
	pkgErrors "botguard-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else becomes a 500 and is reported to Discord best-effort.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	reportInternal(c, d, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Internal server error",
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   message,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportInternal(c, d, fmt.Errorf("panic: %v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Internal server error",
	})
}

// reportInternal sends an internal error to Discord if a client is configured.
// Failures here are swallowed; reporting must never break the response path.
func reportInternal(c *gin.Context, d discord.IDiscord, err error) {
	if d == nil {
		return
	}
	_ = d.SendError(context.WithoutCancel(c.Request.Context()),
		"Internal Error",
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
		err,
	)
}
