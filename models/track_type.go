package models

// Track type names.
const (
	TrackTypeOndernemersdienstverlening = "Ondernemersdienstverlening"
	TrackTypeSHVO                       = "SHVO"
)

// TrackType is a seeded lookup row describing one kind of support track.
type TrackType struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// SHVO tracks are always delegated; Ondernemersdienstverlening may run
	// in-house.
	PartnerOrganizationRequired bool `gorm:"not null;default:false" json:"partner_organization_required"`
}
