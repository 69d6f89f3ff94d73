package models

import (
	"time"

	"github.com/google/uuid"
)

// Track statuses, in lifecycle order.
const (
	TrackStatusNotStarted = "Nog niet gestart"
	TrackStatusStarted    = "Gestart"
	TrackStatusCompleted  = "Beëindigd"
)

// TrackStatusSequence is the only allowed order of track statuses.
var TrackStatusSequence = []string{TrackStatusNotStarted, TrackStatusStarted, TrackStatusCompleted}

// TrackCompletionCauses is the closed set of valid completion causes.
var TrackCompletionCauses = []string{
	"Succesvol doorlopen",
	"Afgebroken",
	"Vervolgtraject nodig",
	"Bedrijf beëindigen",
	"Aanvraag Bbz",
	"Aanvraag PW-uitkering",
}

func IsValidCompletionCause(cause string) bool {
	for _, c := range TrackCompletionCauses {
		if c == cause {
			return true
		}
	}
	return false
}

// Track priorities.
const (
	TrackPriorityCrisis   = "Crisis"
	TrackPriorityRegulier = "Regulier"
)

// Track is a multi-step support engagement on a case, run in-house or via a
// partner organization.
type Track struct {
	BaseModel
	TrackTypeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"track_type_id"`
	TrackType   *TrackType `gorm:"foreignKey:TrackTypeID;constraint:OnDelete:CASCADE" json:"track_type,omitempty"`

	CaseID uuid.UUID `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   *Case     `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"-"`

	PartnerOrganizationID *uuid.UUID           `gorm:"type:uuid;index" json:"partner_organization_id"`
	PartnerOrganization   *PartnerOrganization `gorm:"foreignKey:PartnerOrganizationID;constraint:OnDelete:SET NULL" json:"partner_organization,omitempty"`

	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product   *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`

	ProductCategoryID *uuid.UUID       `gorm:"type:uuid;index" json:"product_category_id"`
	ProductCategory   *ProductCategory `gorm:"foreignKey:ProductCategoryID;constraint:OnDelete:SET NULL" json:"product_category,omitempty"`

	Appointments []Appointment `gorm:"foreignKey:TrackID" json:"appointments,omitempty"`

	Priority *string `gorm:"type:varchar(50)" json:"priority"`

	// Status is derived from these two stamps and never stored redundantly.
	StartDt *time.Time `json:"start_dt"`
	EndDt   *time.Time `json:"end_dt"`

	CompletionCause    *string `gorm:"type:varchar(256)" json:"completion_cause"`
	CompletionApproved bool    `gorm:"not null;default:false" json:"completion_approved"`
}

// Status derives the lifecycle state from the stamped timestamps.
func (t *Track) Status() string {
	if t.StartDt == nil {
		return TrackStatusNotStarted
	}
	if t.EndDt == nil {
		return TrackStatusStarted
	}
	return TrackStatusCompleted
}

func (t *Track) TrackTypeName() string {
	if t.TrackType == nil {
		return ""
	}
	return t.TrackType.Name
}

func (t *Track) PartnerOrganizationName() string {
	if t.PartnerOrganization == nil {
		return ""
	}
	return t.PartnerOrganization.Name
}
