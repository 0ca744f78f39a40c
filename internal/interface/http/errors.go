package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/tender-marketplace/internal/application"
	"github.com/oksasatya/tender-marketplace/pkg/helpers"
	"github.com/oksasatya/tender-marketplace/pkg/response"
)

// ErrorResponder turns service errors into error envelopes. Raw error text
// is only exposed when ExposeErrors is set (non-production environments).
type ErrorResponder struct {
	Logger       *logrus.Logger
	ExposeErrors bool
}

var knownErrors = []struct {
	err     error
	status  int
	message string
}{
	{application.ErrValidation, http.StatusBadRequest, "All fields are required"},
	{application.ErrEmailTaken, http.StatusConflict, "User already exists"},
	{application.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{application.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{application.ErrTenderNotFound, http.StatusNotFound, "Tender not found"},
	{application.ErrApplicationNotFound, http.StatusNotFound, "Application not found"},
	{application.ErrAccessDenied, http.StatusForbidden, "Access denied"},
	{application.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{application.ErrEmptyQuery, http.StatusBadRequest, "Search query is required"},
}

func (r ErrorResponder) Respond(c *gin.Context, err error) {
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			response.Error[any](c, k.status, k.message, nil)
			return
		}
	}
	helpers.LogError(r.Logger, "request failed", err, logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	})
	var detail any
	if r.ExposeErrors {
		detail = err.Error()
	}
	response.Error[any](c, http.StatusInternalServerError, "Internal server error", detail)
}
