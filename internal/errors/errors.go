package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"codeberg.org/tubespark/server/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc.
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// standard error codes
const (
	CodeUnauthorized     = "unauthorized"
	CodeNotFound         = "not_found"
	CodeValidationError  = "validation_error"
	CodeBadRequest       = "bad_request"
	CodeQuotaExceeded    = "quota_exceeded"
	CodeTooManyRequests  = "too_many_requests"
	CodeGenerationFailed = "generation_failed"
	CodeServerError      = "server_error"
)

func respond(c *gin.Context, status int, response ErrorResponse) {
	response.Success = false
	c.AbortWithStatusJSON(status, response)
}

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	respond(c, http.StatusUnauthorized, ErrorResponse{
		Error: message,
		Code:  CodeUnauthorized,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	respond(c, http.StatusNotFound, ErrorResponse{
		Error: message,
		Code:  CodeNotFound,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error: message,
		Code:  CodeBadRequest,
	}

	// add details if error provided
	if err != nil {
		response.Details = classifyError(err).sanitized
	}

	respond(c, http.StatusBadRequest, response)
}

// returns a 400 listing the offending fields
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	if message == "" {
		message = "request validation failed"
	}

	respond(c, http.StatusBadRequest, ErrorResponse{
		Error:  message,
		Code:   CodeValidationError,
		Fields: fields,
	})
}

// returns a 429 carrying the quota state that caused the refusal
func QuotaExceeded(c *gin.Context, kind string, used, limit int) {
	respond(c, http.StatusTooManyRequests, ErrorResponse{
		Error: "usage limit exceeded, upgrade your plan for more " + kind + " credits",
		Code:  CodeQuotaExceeded,
		Usage: &UsageInfo{Kind: kind, Used: used, Limit: limit},
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	respond(c, http.StatusTooManyRequests, ErrorResponse{
		Error: message,
		Code:  CodeTooManyRequests,
	})
}

// returns a 500 when the idea generator failed; the spent unit is not refunded
func GenerationFailed(c *gin.Context, reason string, err error) {
	generationFailed(c, "failed to generate ideas, please try again", reason, err)
}

func ScriptGenerationFailed(c *gin.Context, reason string, err error) {
	generationFailed(c, "failed to generate script, please try again", reason, err)
}

func generationFailed(c *gin.Context, message, reason string, err error) {
	logger.ErrorErr(err, "generation failed",
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
		"reason", reason,
	)

	respond(c, http.StatusInternalServerError, ErrorResponse{
		Error:  message,
		Code:   CodeGenerationFailed,
		Reason: reason,
	})
}

// returns a 500 internal server error. The message is opaque to the client;
// the cause is only logged.
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	info := classifyError(err)

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
		"category", info.category,
	)

	respond(c, http.StatusInternalServerError, ErrorResponse{
		Error: message,
		Code:  CodeServerError,
	})
}

// validates a UUID parameter from the request path. Malformed ids are
// reported as not found.
func ValidatePathUUID(c *gin.Context, paramName, resourceName string) (string, bool) {
	id := c.Param(paramName)

	if id == "" {
		BadRequest(c, "missing "+paramName, nil)
		return "", false
	}

	if uuid.Validate(id) != nil {
		NotFound(c, resourceName)
		return "", false
	}

	return id, true
}
