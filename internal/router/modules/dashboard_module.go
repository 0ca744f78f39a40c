package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/tender-marketplace/internal/interface/http"
	"github.com/oksasatya/tender-marketplace/internal/interface/middleware"
)

// DashboardModule wires the signed-in user's profile.
// Protected: GET /api/dashboard/me
type DashboardModule struct {
	Handler *handlers.UserHandler
	JWT     middleware.TokenVerifier
}

func NewDashboardModule(h *handlers.UserHandler, jwt middleware.TokenVerifier) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/dashboard")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
