package models

import "time"

// Lead is one consultation/booking request submitted through the public site.
type Lead struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Phone    string `gorm:"size:30;not null" json:"phone"`

	Service string `gorm:"size:50;not null;index" json:"service"`

	// Category-specific details. Only one of these is meaningful for a given
	// service, but the store keeps them as flat optional columns.
	WebsiteType *string `gorm:"size:100" json:"website_type,omitempty"`
	Platform    *string `gorm:"size:100" json:"platform,omitempty"`
	VideoType   *string `gorm:"size:100" json:"video_type,omitempty"`
	DesignType  *string `gorm:"size:100" json:"design_type,omitempty"`

	ProjectDeadline    *string `gorm:"size:30" json:"project_deadline,omitempty"`
	ProjectDescription string  `gorm:"type:text;not null" json:"project_description"`

	Status string `gorm:"size:20;default:'New';index" json:"status"`

	// Recorded for abuse review, never exposed through admin JSON or CSV.
	IPAddress string `gorm:"size:45" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
