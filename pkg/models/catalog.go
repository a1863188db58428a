package models

// Product represents a gift basket or flower arrangement in the catalog
type Product struct {
	BaseModel
	Name        string `gorm:"not null;index" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	Price       string `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string `json:"image_url"`
	Stock       bool   `gorm:"default:true" json:"stock"` // pronta entrega (ready within 1h)
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// AddonItem represents an optional extra sold alongside a basket
// (chocolates, balloons, cards, etc.)
type AddonItem struct {
	BaseModel
	Name        string `gorm:"not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	BasePrice   string `gorm:"type:decimal(10,2);not null" json:"base_price"`
	ImageURL    string `json:"image_url"`
	Type        string `gorm:"default:'ADDITIONAL';index" json:"type"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
