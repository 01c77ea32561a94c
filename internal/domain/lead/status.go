package lead

import "github.com/tivrox/agency-api/internal/httperr"

// ===============================
// Lead Status
// ===============================

type Status string

const (
	StatusNew        Status = "New"
	StatusContacted  Status = "Contacted"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func AllStatuses() []Status {
	return []Status{StatusNew, StatusContacted, StatusInProgress, StatusCompleted}
}

// ParseStatus validates a client-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusContacted, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusNew
}
