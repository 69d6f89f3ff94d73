package models

// Client is the ondernemer receiving support.
type Client struct {
	BaseModel
	Initials          string `gorm:"type:varchar(20)" json:"initials"`
	LastName          string `gorm:"type:varchar(200);not null" json:"last_name"`
	Email             string `gorm:"type:varchar(320)" json:"email"`
	EmailConfirmed    bool   `gorm:"default:false" json:"email_confirmed"`
	PhoneNumber       string `gorm:"type:varchar(30)" json:"phone_number"`
	ResidenceLocation string `gorm:"type:varchar(200)" json:"residence_location"`
}

// WrittenName is the form used in correspondence.
func (c *Client) WrittenName() string {
	if c.Initials == "" {
		return c.LastName
	}
	return c.Initials + " " + c.LastName
}
