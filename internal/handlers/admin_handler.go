package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tivrox/agency-api/internal/audit"
	domain "github.com/tivrox/agency-api/internal/domain/lead"
	"github.com/tivrox/agency-api/internal/export"
	"github.com/tivrox/agency-api/internal/httperr"
	"github.com/tivrox/agency-api/internal/httpresp"
	"github.com/tivrox/agency-api/internal/middleware"
	ucLead "github.com/tivrox/agency-api/internal/usecase/lead"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	repo     domain.Repository
	updateUC *ucLead.UpdateStatus
	deleteUC *ucLead.DeleteLead
	audit    *audit.Dispatcher
}

func NewAdminHandler(
	repo domain.Repository,
	updateUC *ucLead.UpdateStatus,
	deleteUC *ucLead.DeleteLead,
	dispatcher *audit.Dispatcher,
) *AdminHandler {
	return &AdminHandler{
		repo:     repo,
		updateUC: updateUC,
		deleteUC: deleteUC,
		audit:    dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AdminHandler) List(c *gin.Context) {
	filters := domain.ListFilters{
		Service: c.Query("service"),
		Status:  c.Query("status"),
	}

	leads, err := h.repo.List(c.Request.Context(), filters)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.Bookings(c, leads)
}

// ======================================================
// STATS
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}

	httpresp.OK(c, stats)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	actor := c.MustGet(middleware.ContextAdminUsername).(string)
	id := c.Param("id")

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	l, err := h.updateUC.Execute(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Status must be one of: New, Contacted, In Progress, Completed.")
			return
		}
		if httperr.IsBusiness(err, "lead_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Could not update status.")
		return
	}

	httpresp.OK(c, l)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminHandler) Delete(c *gin.Context) {
	actor := c.MustGet(middleware.ContextAdminUsername).(string)
	id := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), actor, id); err != nil {
		if httperr.IsBusiness(err, "lead_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "Could not delete booking.")
		return
	}

	httpresp.Deleted(c, "Booking deleted")
}

// ======================================================
// EXPORT (CSV)
// ======================================================

func (h *AdminHandler) Export(c *gin.Context) {
	actor := c.MustGet(middleware.ContextAdminUsername).(string)

	leads, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Could not export bookings.")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, leads); err != nil {
		httperr.Internal(c, "failed_to_export", "Could not export bookings.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "leads_exported",
		Entity:   "lead",
		Metadata: map[string]int{"count": len(leads)},
	})

	filename := export.Filename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
