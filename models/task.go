package models

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses.
const (
	TaskStatusToDo       = "Openstaand"
	TaskStatusInProgress = "In uitvoering"
	TaskStatusClosed     = "Gesloten"
)

// Task is a follow-up action on a case, optionally assigned to a user.
type Task struct {
	BaseModel
	Description string    `gorm:"type:varchar(1024);not null" json:"description"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Openstaand'" json:"status"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`

	CaseID uuid.UUID `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   *Case     `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"-"`

	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User   *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (t *Task) IsDue(now time.Time) bool {
	return !now.Before(t.DueDate)
}
