package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/tender-marketplace/internal/application"
	"github.com/oksasatya/tender-marketplace/internal/interface/middleware"
	"github.com/oksasatya/tender-marketplace/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Errors ErrorResponder
}

func NewUserHandler(svc *application.UserService, errs ErrorResponder) *UserHandler {
	return &UserHandler{Svc: svc, Errors: errs}
}

// Me GET /api/dashboard/me
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "Profile fetched", nil)
}
