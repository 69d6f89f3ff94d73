package models

import (
	"github.com/google/uuid"

	"ondernemercentraal.nl/configs"
)

// User is an internal or partner account. Authentication happens in
// Keycloak; this row only carries identity and the role for permission
// checks.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null" json:"name"`
	Email    string `gorm:"type:varchar(320);index" json:"email"`
	RoleName string `gorm:"type:varchar(50);not null;index" json:"role_name"`

	PartnerOrganizationID *uuid.UUID           `gorm:"type:uuid;index" json:"partner_organization_id"`
	PartnerOrganization   *PartnerOrganization `gorm:"foreignKey:PartnerOrganizationID" json:"-"`
}

func (u *User) HasRole(role string) bool {
	return u.RoleName == role
}

func (u *User) HasPermission(permission configs.Permission) bool {
	return configs.RoleHasPermission(u.RoleName, permission)
}
