package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ondernemercentraal.nl/pkg/timeslot"
)

// Appointment statuses.
const (
	AppointmentStatusOpen      = "Open"
	AppointmentStatusCompleted = "Voltooid"
	AppointmentStatusCancelled = "Geannuleerd"
)

// IsValidAppointmentStatus reports whether status is one of the known
// appointment statuses.
func IsValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentStatusOpen, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled (or still unscheduled) gesprek on a case.
// StartTime and EndTime are either both set or both nil.
type Appointment struct {
	BaseModel
	StartTime *time.Time `gorm:"index" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	CaseID uuid.UUID `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   *Case     `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"-"`

	AppointmentTypeID uuid.UUID        `gorm:"type:uuid;not null;index" json:"appointment_type_id"`
	AppointmentType   *AppointmentType `gorm:"foreignKey:AppointmentTypeID;constraint:OnDelete:CASCADE" json:"appointment_type,omitempty"`

	// Direct assignment; the track's partner organization takes precedence.
	PartnerOrganizationID *uuid.UUID           `gorm:"type:uuid;index" json:"partner_organization_id"`
	PartnerOrganization   *PartnerOrganization `gorm:"foreignKey:PartnerOrganizationID;constraint:OnDelete:CASCADE" json:"partner_organization,omitempty"`

	TrackID *uuid.UUID `gorm:"type:uuid;index" json:"track_id"`
	Track   *Track     `gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE" json:"-"`

	Status string `gorm:"type:varchar(50);not null" json:"status"`
}

func (a *Appointment) AppointmentTypeName() string {
	if a.AppointmentType == nil {
		return ""
	}
	return a.AppointmentType.Name
}

// EffectivePartnerOrganization returns the track's partner organization when
// the appointment belongs to a delegated track, otherwise the direct one.
func (a *Appointment) EffectivePartnerOrganization() *PartnerOrganization {
	if a.Track != nil && a.Track.PartnerOrganization != nil {
		return a.Track.PartnerOrganization
	}
	return a.PartnerOrganization
}

var dutchWeekdays = map[time.Weekday]string{
	time.Monday:    "maandag",
	time.Tuesday:   "dinsdag",
	time.Wednesday: "woensdag",
	time.Thursday:  "donderdag",
	time.Friday:    "vrijdag",
	time.Saturday:  "zaterdag",
	time.Sunday:    "zondag",
}

var dutchMonths = map[time.Month]string{
	time.January:   "januari",
	time.February:  "februari",
	time.March:     "maart",
	time.April:     "april",
	time.May:       "mei",
	time.June:      "juni",
	time.July:      "juli",
	time.August:    "augustus",
	time.September: "september",
	time.October:   "oktober",
	time.November:  "november",
	time.December:  "december",
}

// FormattedSlot renders the appointment interval the way it appears in
// client mail, e.g. "maandag 3 maart 10:00 u - 11:00 u".
func (a *Appointment) FormattedSlot() string {
	if a.StartTime == nil || a.EndTime == nil {
		return ""
	}
	start := a.StartTime.In(timeslot.Amsterdam)
	end := a.EndTime.In(timeslot.Amsterdam)
	return fmt.Sprintf("%s %d %s %s u - %s u",
		dutchWeekdays[start.Weekday()], start.Day(), dutchMonths[start.Month()],
		start.Format("15:04"), end.Format("15:04"))
}

// ConfirmationMailContent builds the client confirmation lines for a newly
// scheduled or rescheduled appointment.
func (a *Appointment) ConfirmationMailContent() []string {
	content := []string{
		"Hierbij bevestigen wij uw afspraak.",
		"Uw afspraak:",
		fmt.Sprintf("%s<br />%s", a.AppointmentTypeName(), a.FormattedSlot()),
	}

	switch a.AppointmentTypeName() {
	case AppointmentTypeCheckgesprek:
		content = append(content,
			"Deze afspraak zal telefonisch plaatsvinden. U wordt gebeld door de adviseur van Ondernemer Centraal.")
	case AppointmentTypeToekomstgesprek:
		if org := a.EffectivePartnerOrganization(); org != nil {
			content = append(content, fmt.Sprintf(
				"Deze afspraak zal telefonisch plaatsvinden. U wordt gebeld door een adviseur van onze partner %s.", org.Name))
		}
	}
	return content
}
