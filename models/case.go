package models

import "github.com/google/uuid"

// Case is the dossier of one client. Tracks, appointments and tasks are
// owned by the case and removed with it.
type Case struct {
	BaseModel
	CaseNumber string `gorm:"type:varchar(50);uniqueIndex;not null" json:"case_number"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   *Client   `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client,omitempty"`

	AdvisorID *uuid.UUID `gorm:"type:uuid;index" json:"advisor_id"`
	Advisor   *User      `gorm:"foreignKey:AdvisorID" json:"advisor,omitempty"`

	Tracks       []Track       `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"tracks,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
	Tasks        []Task        `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}
