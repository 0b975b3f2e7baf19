// Package handlers implements the local stub backend. It speaks the same
// wire contract as the hosted booking API, including the {"detail": ...}
// error envelope the client maps from.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dzbooking/internal/domain"
	"dzbooking/internal/store"
)

// Handler carries the shared stub state.
type Handler struct {
	Store     *store.Store
	JWTSecret []byte
}

func NewHandler(st *store.Store, jwtSecret []byte) *Handler {
	return &Handler{Store: st, JWTSecret: jwtSecret}
}

// RespondError sends the backend error envelope.
func RespondError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// RespondDomainError maps domain errors to HTTP responses. Conflicts map to
// 400 rather than 409; the hosted API reports the booked-seat race that way
// and the client keys off the detail string.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, errDetail(err))
	case domain.IsConflict(err):
		RespondError(c, http.StatusBadRequest, errDetail(err))
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, errDetail(err))
	case domain.IsAuthRequired(err):
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// errDetail keeps the envelope's detail a bare message. The wrapped error
// types prefix their Error() strings with the field or resource; the detail
// field carries only the message the client keys off.
func errDetail(err error) string {
	var v domain.ValidationError
	if errors.As(err, &v) && v.Msg != "" {
		return v.Msg
	}
	var cf domain.ConflictError
	if errors.As(err, &cf) && cf.Msg != "" {
		return cf.Msg
	}
	var nf domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return err.Error()
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "Request body required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
