package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/tender-marketplace/internal/interface/http"
	"github.com/oksasatya/tender-marketplace/internal/interface/middleware"
)

// TenderModule wires tender and application routes; all are protected.
type TenderModule struct {
	Handler *handlers.TenderHandler
	JWT     middleware.TokenVerifier
}

func NewTenderModule(h *handlers.TenderHandler, jwt middleware.TokenVerifier) *TenderModule {
	return &TenderModule{Handler: h, JWT: jwt}
}

func (m *TenderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tenders")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("/my", m.Handler.ListMine)
		auth.GET("/others", m.Handler.ListOthers)
		auth.GET("/my-applications", m.Handler.ListMyApplications)
		auth.GET("/my-with-applications", m.Handler.ListMineWithApplications)
		auth.GET("/search", m.Handler.Search)
		auth.POST("/:id/apply", m.Handler.Apply)
		auth.GET("/:id/applications", m.Handler.ListApplications)
		auth.PATCH("/applications/:id/status", m.Handler.UpdateStatus)
	}
}
