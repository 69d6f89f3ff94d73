package models

// PartnerOrganization is an external provider tracks and appointments can be
// delegated to, gated by the products it offers.
type PartnerOrganization struct {
	BaseModel
	Name             string `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Email            string `gorm:"type:varchar(320)" json:"email"`
	Description      string `gorm:"type:text" json:"description"`
	DescriptionShort string `gorm:"type:varchar(200)" json:"description_short"`

	Products []Product `gorm:"many2many:partner_organization_products" json:"products,omitempty"`
}

func (p *PartnerOrganization) ProductNames() []string {
	names := make([]string, 0, len(p.Products))
	for _, product := range p.Products {
		names = append(names, product.Name)
	}
	return names
}

// OffersProduct requires Products to be preloaded.
func (p *PartnerOrganization) OffersProduct(productName string) bool {
	for _, product := range p.Products {
		if product.Name == productName {
			return true
		}
	}
	return false
}
