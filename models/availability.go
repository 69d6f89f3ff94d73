package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityDefinition defines advisor capacity per hour range, either as
// the system-wide default (exactly one row, Default=true, Date=nil) or as an
// override for a single calendar date. A dated definition may cover only a
// subset of the default's hour ranges.
type AvailabilityDefinition struct {
	BaseModel
	Default bool       `gorm:"column:is_default;not null;default:false" json:"default"`
	Date    *time.Time `gorm:"type:date;uniqueIndex" json:"date"`

	Slots []CapacitySlot `gorm:"foreignKey:AvailabilityDefinitionID;constraint:OnDelete:CASCADE" json:"slots"`
}

// SlotForHours returns the capacity slot fully containing [startHour, endHour],
// or nil when this definition does not cover the interval.
func (d *AvailabilityDefinition) SlotForHours(startHour, endHour int) *CapacitySlot {
	for i := range d.Slots {
		slot := &d.Slots[i]
		if slot.HourStart <= startHour && slot.HourEnd >= endHour {
			return slot
		}
	}
	return nil
}

// CapacitySlot is one hour range of an availability definition with the
// number of advisors available in it.
type CapacitySlot struct {
	BaseModel
	AvailabilityDefinitionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_definition_hour_start" json:"-"`

	HourStart int `gorm:"not null;uniqueIndex:uq_definition_hour_start" json:"hour_start"`
	HourEnd   int `gorm:"not null" json:"hour_end"`
	Capacity  int `gorm:"not null" json:"capacity"`
}
