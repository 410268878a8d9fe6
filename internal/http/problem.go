package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mylibrary-user/internal/domain"
)

// ProblemMediaType is the content type of every error response.
const ProblemMediaType = "application/problem+json"

// ProblemDetail is the error document returned by every failed request.
type ProblemDetail struct {
	Title    string          `json:"title" example:"Resource not found"`
	Detail   string          `json:"detail,omitempty" example:"Requested resource cannot be found"`
	Type     string          `json:"type,omitempty" example:"ERR_00001"`
	Instance string          `json:"instance,omitempty" example:"/mylibrary/users/25534321"`
	Status   int             `json:"status,omitempty" example:"404"`
	Errors   []ProblemDetail `json:"errors,omitempty"`
}

// translate classifies err and builds its problem document. Instance is left
// for the caller.
func translate(err error) (ProblemDetail, int) {
	var (
		notFound   *domain.NotFoundError
		unreadable *domain.BodyUnreadableError
		invalid    *domain.ValidationError
		mismatch   *domain.TypeMismatchError
		constraint *domain.ConstraintViolationError
	)

	switch {
	case errors.As(err, &notFound):
		return ProblemDetail{
			Title:  "Resource not found",
			Detail: "Requested resource cannot be found",
			Status: http.StatusNotFound,
		}, http.StatusNotFound

	case errors.As(err, &unreadable):
		return ProblemDetail{
			Title:  "Message cannot be converted",
			Detail: "Invalid request body: " + unreadable.Message,
			Status: http.StatusBadRequest,
		}, http.StatusBadRequest

	case errors.As(err, &invalid):
		nested := make([]ProblemDetail, len(invalid.Fields))
		for i, f := range invalid.Fields {
			nested[i] = ProblemDetail{
				Title:  "Invalid Parameter",
				Detail: f.Field + " " + f.Message,
			}
		}
		return ProblemDetail{
			Title:  "Validation failed",
			Status: http.StatusBadRequest,
			Errors: nested,
		}, http.StatusBadRequest

	case errors.As(err, &mismatch):
		detail := fmt.Sprintf("Incorrect value '%s' for field '%s'. Expected value type '%s'",
			mismatch.Value, mismatch.Param, mismatch.ExpectedType)
		return ProblemDetail{
			Title:  "Field type mismatch",
			Status: http.StatusBadRequest,
			Errors: []ProblemDetail{{Title: "Wrong field value format", Detail: detail}},
		}, http.StatusBadRequest

	case errors.As(err, &constraint):
		return ProblemDetail{
			Title:  "Constraint Violation",
			Detail: constraint.Message,
			Status: http.StatusConflict,
		}, http.StatusConflict
	}

	return ProblemDetail{
		Title:  "Internal Error",
		Detail: "An unexpected error has occurred",
		Status: http.StatusInternalServerError,
	}, http.StatusInternalServerError
}

// fail renders err as a problem document and aborts the request.
func (h *Handler) fail(c *gin.Context, err error) {
	problem, status := translate(err)
	problem.Instance = c.Request.URL.Path

	entry := h.logger.WithFields(logrus.Fields{
		"request_id": requestID(c),
		"status":     status,
		"path":       problem.Instance,
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("An unexpected error occurred")
	} else {
		entry.Debugf("%s: %v", problem.Title, err)
	}

	writeProblem(c, status, problem)
}

func writeProblem(c *gin.Context, status int, problem ProblemDetail) {
	c.Header("Content-Type", ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}
