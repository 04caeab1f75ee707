// Package handlers contains the HTTP request handlers of the REST API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeError maps an application error to its HTTP status and writes the
// structured body.  Server-side errors are masked so internals never leak
// to clients.
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	resp := ErrorResponse{Code: code.String(), Message: err.Error()}
	if appErr, ok := err.(*errors.AppError); ok {
		resp.Message = appErr.Message
		resp.Detail = appErr.Detail
	}
	if errors.IsServerError(code) {
		resp = ErrorResponse{Code: code.String(), Message: "internal server error"}
	}

	c.AbortWithStatusJSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    errors.ErrCodeBadRequest.String(),
		Message: msg,
	})
}
