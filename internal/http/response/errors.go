package response

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/platform/apierr"
)

const genericServerMessage = "internal server error"

var exposeCause atomic.Bool

// SetDevelopmentMode makes 5xx responses carry the underlying error text.
func SetDevelopmentMode(on bool) {
	exposeCause.Store(on)
}

// StatusFor maps an aggregate error code to an HTTP status.
func StatusFor(code domainagg.ErrorCode) int {
	switch code {
	case domainagg.CodeValidation:
		return http.StatusBadRequest
	case domainagg.CodeNotFound:
		return http.StatusNotFound
	case domainagg.CodeConflict:
		return http.StatusConflict
	case domainagg.CodePreconditionFailed:
		return http.StatusPreconditionFailed
	case domainagg.CodeInvariantViolation:
		return http.StatusUnprocessableEntity
	case domainagg.CodeRetryable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondAppError writes the error envelope for any error returned by a
// handler's collaborators. The error is also attached to the gin context so
// the request logger can report it.
func RespondAppError(c *gin.Context, err error) {
	if err == nil {
		RespondError(c, http.StatusInternalServerError, string(domainagg.CodeInternal), nil)
		return
	}
	_ = c.Error(err)

	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		RespondError(c, status, ae.Code, ae)
		return
	}

	code := domainagg.CodeOf(err)
	if code == "" {
		code = domainagg.CodeInternal
	}
	status := StatusFor(code)
	msg := domainagg.MessageOf(err)
	if status >= http.StatusInternalServerError {
		msg = genericServerMessage
		if exposeCause.Load() {
			msg = err.Error()
		}
	}
	RespondError(c, status, string(code), errors.New(msg))
}
