package handlers

import (
	"time"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
)

const dateLayout = "2006-01-02"

type userResponse struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	CompanyName         string    `json:"company_name"`
	Industry            string    `json:"industry"`
	IndustryDescription string    `json:"industry_description"`
	Logo                string    `json:"logo"`
	CreatedAt           time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		CompanyName:         u.CompanyName,
		Industry:            u.Industry,
		IndustryDescription: u.IndustryDescription,
		Logo:                u.LogoURL,
		CreatedAt:           u.CreatedAt,
	}
}

type tenderResponse struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Deadline    string    `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
	CompanyName string    `json:"company_name,omitempty"`
	Industry    string    `json:"industry,omitempty"`
}

func toTenderResponse(t entity.Tender) tenderResponse {
	return tenderResponse{
		ID:          t.ID,
		CreatorID:   t.CreatorID,
		Title:       t.Title,
		Description: t.Description,
		Budget:      t.Budget,
		Deadline:    t.Deadline.Format(dateLayout),
		CreatedAt:   t.CreatedAt,
		CompanyName: t.OwnerCompanyName,
		Industry:    t.OwnerIndustry,
	}
}

func toTenderList(ts []entity.Tender) []tenderResponse {
	out := make([]tenderResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTenderResponse(t))
	}
	return out
}

type tenderWithApplicationsResponse struct {
	tenderResponse
	Applications []applicationResponse `json:"applications"`
}

func toTenderWithApplicationsList(ts []entity.Tender) []tenderWithApplicationsResponse {
	out := make([]tenderWithApplicationsResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, tenderWithApplicationsResponse{
			tenderResponse: toTenderResponse(t),
			Applications:   toApplicationList(t.Applications),
		})
	}
	return out
}

type applicationResponse struct {
	ID           string    `json:"id"`
	TenderID     string    `json:"tender_id"`
	ApplicantID  string    `json:"applicant_id"`
	ProposalText string    `json:"proposal_text"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func toApplicationResponse(a entity.Application) applicationResponse {
	return applicationResponse{
		ID:           a.ID,
		TenderID:     a.TenderID,
		ApplicantID:  a.ApplicantID,
		ProposalText: a.ProposalText,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

func toApplicationList(as []entity.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, toApplicationResponse(a))
	}
	return out
}

type tenderSummary struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
}

type myApplicationResponse struct {
	applicationResponse
	Tender tenderSummary `json:"tender"`
}

func toMyApplicationList(as []entity.Application) []myApplicationResponse {
	out := make([]myApplicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, myApplicationResponse{
			applicationResponse: toApplicationResponse(a),
			Tender:              tenderSummary{Title: a.TenderTitle, Deadline: a.TenderDeadline.Format(dateLayout)},
		})
	}
	return out
}
