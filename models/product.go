package models

import "github.com/google/uuid"

// ProductCategory groups the products of the municipal support catalogue.
type ProductCategory struct {
	BaseModel
	Name     string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Products []Product `gorm:"foreignKey:ProductCategoryID" json:"products,omitempty"`
}

// Product is one catalogue entry a track or partner organization can be
// bound to.
type Product struct {
	BaseModel
	Name string `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`

	ProductCategoryID *uuid.UUID       `gorm:"type:uuid;index" json:"product_category_id"`
	ProductCategory   *ProductCategory `gorm:"foreignKey:ProductCategoryID;constraint:OnDelete:SET NULL" json:"-"`
}
