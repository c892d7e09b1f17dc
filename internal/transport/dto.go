package transport

import (
	"fmt"
	"time"

	"github.com/skillbridge/skillbridge/internal/models"
)

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

func resourceLinks(resource string, id uint) []Link {
	base := fmt.Sprintf("/api/v1/%s/%d", resource, id)
	return []Link{
		{Href: base, Rel: "self", Method: "GET"},
		{Href: base, Rel: "update", Method: "PUT"},
		{Href: base, Rel: "delete", Method: "DELETE"},
	}
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	NationalID string `json:"national_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	NationalID   string    `json:"national_id"`
	RegisteredAt time.Time `json:"registered_at"`
	Links        []Link    `json:"links,omitempty"`
}

func UserFrom(u *models.User, withLinks bool) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		NationalID:   u.NationalID,
		RegisteredAt: u.RegisteredAt,
	}
	if withLinks {
		resp.Links = append(resourceLinks("users", u.ID), Link{
			Href:   fmt.Sprintf("/api/v1/users/%d/recommendations", u.ID),
			Rel:    "recommendations",
			Method: "GET",
		})
	}
	return resp
}

type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	NationalID string `json:"national_id"`
}

type UpdateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
}

type CompanyRequest struct {
	LegalName string `json:"legal_name"`
	TaxID     string `json:"tax_id"`
	Email     string `json:"email"`
}

type CompanyResponse struct {
	ID        uint   `json:"id"`
	LegalName string `json:"legal_name"`
	TaxID     string `json:"tax_id"`
	Email     string `json:"email"`
	Links     []Link `json:"links,omitempty"`
}

func CompanyFrom(c *models.Company, withLinks bool) CompanyResponse {
	resp := CompanyResponse{
		ID:        c.ID,
		LegalName: c.LegalName,
		TaxID:     c.TaxID,
		Email:     c.Email,
	}
	if withLinks {
		resp.Links = resourceLinks("companies", c.ID)
	}
	return resp
}

type JobPostingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Salary      *float64 `json:"salary"`
	CompanyID   uint     `json:"company_id"`
}

type JobPostingResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Salary      *float64  `json:"salary"`
	PostedAt    time.Time `json:"posted_at"`
	CompanyID   uint      `json:"company_id"`
	CompanyName string    `json:"company_name,omitempty"`
	Links       []Link    `json:"links,omitempty"`
}

func JobPostingFrom(j *models.JobPosting, withLinks bool) JobPostingResponse {
	resp := JobPostingResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Salary:      j.Salary,
		PostedAt:    j.PostedAt,
		CompanyID:   j.CompanyID,
	}
	if j.Company != nil {
		resp.CompanyName = j.Company.LegalName
	}
	if withLinks {
		resp.Links = append(resourceLinks("jobs", j.ID), Link{
			Href:   fmt.Sprintf("/api/v1/companies/%d", j.CompanyID),
			Rel:    "company",
			Method: "GET",
		})
	}
	return resp
}

type CourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Hours       int    `json:"hours"`
}

type CourseResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Hours       int    `json:"hours"`
	Links       []Link `json:"links,omitempty"`
}

func CourseFrom(c *models.Course, withLinks bool) CourseResponse {
	resp := CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Hours:       c.Hours,
	}
	if withLinks {
		resp.Links = resourceLinks("courses", c.ID)
	}
	return resp
}

type CreateCertificateRequest struct {
	Description string `json:"description"`
	UserID      uint   `json:"user_id"`
	CourseID    uint   `json:"course_id"`
}

type UpdateCertificateRequest struct {
	Description string `json:"description"`
}

type CertificateResponse struct {
	ID             uint      `json:"id"`
	IssuedAt       time.Time `json:"issued_at"`
	Description    string    `json:"description"`
	ValidationCode string    `json:"validation_code"`
	UserID         uint      `json:"user_id"`
	CourseID       uint      `json:"course_id"`
	UserName       string    `json:"user_name,omitempty"`
	CourseName     string    `json:"course_name,omitempty"`
	Links          []Link    `json:"links,omitempty"`
}

func CertificateFrom(c *models.Certificate, withLinks bool) CertificateResponse {
	resp := CertificateResponse{
		ID:             c.ID,
		IssuedAt:       c.IssuedAt,
		Description:    c.Description,
		ValidationCode: c.ValidationCode,
		UserID:         c.UserID,
		CourseID:       c.CourseID,
	}
	if c.User != nil {
		resp.UserName = c.User.Name
	}
	if c.Course != nil {
		resp.CourseName = c.Course.Name
	}
	if withLinks {
		resp.Links = append(resourceLinks("certificates", c.ID),
			Link{Href: fmt.Sprintf("/api/v1/users/%d", c.UserID), Rel: "user", Method: "GET"},
			Link{Href: fmt.Sprintf("/api/v1/courses/%d", c.CourseID), Rel: "course", Method: "GET"},
		)
	}
	return resp
}
