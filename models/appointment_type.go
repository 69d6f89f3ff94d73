package models

// Appointment type names. Checkgesprek is the only type that consumes
// advisor slot capacity.
const (
	AppointmentTypeCheckgesprek    = "Checkgesprek"
	AppointmentTypeToekomstgesprek = "Toekomstgesprek"
	AppointmentTypeSHVOIntake      = "SHVO intake"
)

// AppointmentType is a seeded lookup row.
type AppointmentType struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// RequiredProductName returns the product a partner organization must offer
// before it may be assigned an appointment of this type. Checkgesprekken are
// handled in-house and need no product.
func RequiredProductName(appointmentTypeName string) string {
	switch appointmentTypeName {
	case AppointmentTypeToekomstgesprek:
		return "Toekomstgesprek"
	case AppointmentTypeSHVOIntake:
		return "SHVO intake"
	default:
		return ""
	}
}
