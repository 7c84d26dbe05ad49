package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"storefront/internal/logging"
	"storefront/internal/repository"
	"storefront/internal/service"
)

// envelope is the body of every /api response
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, data any, msg string) {
	c.JSON(status, envelope{Success: true, Data: data, Message: msg})
}

func respondList[T any](c *gin.Context, items []T) {
	n := len(items)
	c.JSON(http.StatusOK, envelope{Success: true, Data: items, Count: &n})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Error: msg})
}

// fail maps a service error to a status and envelope. notFound is the
// entity-specific message used for repository.ErrNotFound.
func fail(c *gin.Context, err error, notFound string) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	switch status {
	case http.StatusNotFound:
		msg = notFound
	case http.StatusConflict:
		msg = "User with this email already exists"
	case http.StatusInternalServerError:
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	respondError(c, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// bindRequired decodes the JSON body into req and runs the binding tags.
// Any failure is answered with 400 and msg; the offending fields are logged.
func bindRequired(c *gin.Context, req any, msg string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	ev := logging.Ctx(c.Request.Context()).Debug().Str("path", c.FullPath())
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		ev = ev.Strs("fields", fields)
	} else {
		ev = ev.Err(err)
	}
	ev.Msg("rejected request body")
	respondError(c, http.StatusBadRequest, msg)
	return false
}

// bindPatch decodes an optional JSON patch; an empty body is an empty patch.
func bindPatch(c *gin.Context, patch any) bool {
	if err := c.ShouldBindJSON(patch); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
