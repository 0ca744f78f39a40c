package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/tender-marketplace/internal/interface/http"
)

// AuthModule exposes the public identity endpoints.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.Signup)
	rg.POST("/auth/login", m.Handler.Login)
}
