package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/tivrox/agency-api/internal/models"
)

var csvHeader = []string{
	"id",
	"full_name",
	"email",
	"phone",
	"service",
	"website_type",
	"platform",
	"video_type",
	"design_type",
	"project_deadline",
	"project_description",
	"status",
	"created_at",
}

// WriteCSV writes every lead as one row, header first. The header is written
// even when there are no leads.
func WriteCSV(w io.Writer, leads []models.Lead) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, l := range leads {
		record := []string{
			l.ID,
			l.FullName,
			l.Email,
			l.Phone,
			l.Service,
			deref(l.WebsiteType),
			deref(l.Platform),
			deref(l.VideoType),
			deref(l.DesignType),
			deref(l.ProjectDeadline),
			l.ProjectDescription,
			l.Status,
			l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename encodes the export date, e.g. tivrox_bookings_20250601.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("tivrox_bookings_%s.csv", now.UTC().Format("20060102"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
