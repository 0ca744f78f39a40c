package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/tender-marketplace/internal/application"
	"github.com/oksasatya/tender-marketplace/pkg/response"
	"github.com/oksasatya/tender-marketplace/pkg/validation"
)

type AuthHandler struct {
	Svc            *application.UserService
	Errors         ErrorResponder
	MaxUploadBytes int64
}

func NewAuthHandler(svc *application.UserService, errs ErrorResponder, maxUploadBytes int64) *AuthHandler {
	return &AuthHandler{Svc: svc, Errors: errs, MaxUploadBytes: maxUploadBytes}
}

type signupRequest struct {
	Name                string `form:"name" json:"name" binding:"required"`
	Email               string `form:"email" json:"email" binding:"required"`
	Password            string `form:"password" json:"password" binding:"required"`
	CompanyName         string `form:"company_name" json:"company_name" binding:"required"`
	Industry            string `form:"industry" json:"industry" binding:"required"`
	IndustryDescription string `form:"industry_description" json:"industry_description" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Signup POST /api/auth/signup (multipart, optional "logo" file)
func (h *AuthHandler) Signup(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "All fields are required", validation.ToDetails(err))
		return
	}

	in := application.SignupInput{
		Name:                req.Name,
		Email:               req.Email,
		Password:            req.Password,
		CompanyName:         req.CompanyName,
		Industry:            req.Industry,
		IndustryDescription: req.IndustryDescription,
	}

	fh, err := c.FormFile("logo")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			h.Errors.Respond(c, err)
			return
		}
		defer f.Close()
		in.Logo = &application.LogoFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		}
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		response.Error[any](c, http.StatusBadRequest, "invalid logo upload", nil)
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), in)
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u), "User registered successfully", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Email and password are required", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Errors.Respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, loginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt}, "Login successful", nil)
}
