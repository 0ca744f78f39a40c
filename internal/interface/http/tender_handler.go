package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/tender-marketplace/internal/application"
	"github.com/oksasatya/tender-marketplace/internal/interface/middleware"
	"github.com/oksasatya/tender-marketplace/pkg/response"
	"github.com/oksasatya/tender-marketplace/pkg/validation"
)

type TenderHandler struct {
	Svc    *application.TenderService
	Errors ErrorResponder
}

func NewTenderHandler(svc *application.TenderService, errs ErrorResponder) *TenderHandler {
	return &TenderHandler{Svc: svc, Errors: errs}
}

type createTenderRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Budget      *float64 `json:"budget" binding:"required,gte=0"`
	Deadline    string   `json:"deadline" binding:"required,datetime=2006-01-02"`
}

type applyRequest struct {
	ProposalText string `json:"proposal_text" binding:"required"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func caller(c *gin.Context) string { return c.GetString(middleware.CtxUserIDKey) }

// Create POST /api/tenders
func (h *TenderHandler) Create(c *gin.Context) {
	var req createTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "All fields are required", validation.ToDetails(err))
		return
	}
	deadline, _ := time.Parse(dateLayout, req.Deadline)
	t, err := h.Svc.CreateTender(c.Request.Context(), caller(c), application.CreateTenderInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      *req.Budget,
		Deadline:    deadline,
	})
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toTenderResponse(*t), "Tender created", nil)
}

// ListMine GET /api/tenders/my
func (h *TenderHandler) ListMine(c *gin.Context) {
	ts, err := h.Svc.ListMine(c.Request.Context(), caller(c))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toTenderList(ts), "Tenders fetched", nil)
}

// ListOthers GET /api/tenders/others
func (h *TenderHandler) ListOthers(c *gin.Context) {
	ts, err := h.Svc.ListOthers(c.Request.Context(), caller(c))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toTenderList(ts), "Tenders fetched", nil)
}

// Apply POST /api/tenders/:id/apply
func (h *TenderHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Proposal text is required", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Apply(c.Request.Context(), caller(c), c.Param("id"), req.ProposalText)
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toApplicationResponse(*a), "Application submitted", nil)
}

// ListApplications GET /api/tenders/:id/applications (tender owner only)
func (h *TenderHandler) ListApplications(c *gin.Context) {
	as, err := h.Svc.ListApplications(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toApplicationList(as), "Applications fetched", nil)
}

// UpdateStatus PATCH /api/tenders/applications/:id/status (tender owner only)
func (h *TenderHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Invalid status", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.UpdateApplicationStatus(c.Request.Context(), caller(c), c.Param("id"), req.Status)
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toApplicationResponse(*a), "Application status updated", nil)
}

// ListMyApplications GET /api/tenders/my-applications
func (h *TenderHandler) ListMyApplications(c *gin.Context) {
	as, err := h.Svc.ListMyApplications(c.Request.Context(), caller(c))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toMyApplicationList(as), "Applications fetched", nil)
}

// ListMineWithApplications GET /api/tenders/my-with-applications
func (h *TenderHandler) ListMineWithApplications(c *gin.Context) {
	ts, err := h.Svc.ListMineWithApplications(c.Request.Context(), caller(c))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toTenderWithApplicationsList(ts), "Tenders fetched", nil)
}

// Search GET /api/tenders/search?q=
func (h *TenderHandler) Search(c *gin.Context) {
	ts, err := h.Svc.Search(c.Request.Context(), caller(c), c.Query("q"))
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, toTenderList(ts), "Search results", nil)
}
