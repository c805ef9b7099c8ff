package models

import "time"

// Student lifecycle states.
const (
	StudentStatusActive    = "active"
	StudentStatusInactive  = "inactive"
	StudentStatusGraduated = "graduated"
)

// Student represents a learner enrolled at an academy.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrgID     uint      `gorm:"index;not null" json:"org_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Grade     string    `gorm:"size:50" json:"grade"`
	Status    string    `gorm:"size:20;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
