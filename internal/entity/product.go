package entity

// Product is a shippable product type. SpaceConsumptionRate is the cargo
// space consumed per unit quantity.
type Product struct {
	ProductTypeID        string  `json:"product_type_id" gorm:"primaryKey;size:36"`
	ProductName          string  `json:"product_name" gorm:"size:200;not null"`
	SpaceConsumptionRate float64 `json:"space_consumption_rate" gorm:"type:decimal(10,4);not null"`
}

func (Product) TableName() string {
	return "products"
}
