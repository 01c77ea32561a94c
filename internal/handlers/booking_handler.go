package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/tivrox/agency-api/internal/httperr"
	"github.com/tivrox/agency-api/internal/httpresp"
	ucLead "github.com/tivrox/agency-api/internal/usecase/lead"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucLead.CreateLead
}

func NewBookingHandler(createUC *ucLead.CreateLead) *BookingHandler {
	return &BookingHandler{createUC: createUC}
}

// ======================================================
// REQUESTS
// ======================================================

// Required fields carry no binding tags: validation lives in the use case so
// it can report every bad field at once instead of failing on the first.
type CreateBookingRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`

	WebsiteType *string `json:"website_type"`
	Platform    *string `json:"platform"`
	VideoType   *string `json:"video_type"`
	DesignType  *string `json:"design_type"`

	ProjectDeadline    *string `json:"project_deadline"`
	ProjectDescription string  `json:"project_description"`

	// Hidden honeypot field; humans never fill it.
	CompanyURL string `json:"company_url"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	l, _, err := h.createUC.Execute(c.Request.Context(), ucLead.CreateLeadInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Service:  req.Service,

		WebsiteType: req.WebsiteType,
		Platform:    req.Platform,
		VideoType:   req.VideoType,
		DesignType:  req.DesignType,

		ProjectDeadline:    req.ProjectDeadline,
		ProjectDescription: req.ProjectDescription,

		CompanyURL: req.CompanyURL,
		IPAddress:  c.ClientIP(),
	})
	if err != nil {
		var ve *httperr.ValidationError
		if errors.As(err, &ve) {
			httperr.WriteValidation(c, ve)
			return
		}

		log.Printf("intake: failed to store booking from %s: %v", c.ClientIP(), err)
		httperr.Internal(c, "failed_to_create_booking", "Could not save your request.")
		return
	}

	// Honeypot submissions land here too with the same shape; the bot gets
	// a success it cannot distinguish from the real thing.
	httpresp.Created(c, l)
}
