package domain

// PricingModel is a named, reusable bundle of price increments.
type PricingModel struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (PricingModel) TableName() string { return "pricingmodels" }

// Price is one priced unit definition owned by exactly one pricing model.
// (model_id, name) is unique.
type Price struct {
	ID      string `json:"id,omitempty" gorm:"primaryKey;type:uuid"`
	ModelID string `json:"-" gorm:"column:model_id;type:uuid;not null;index"`
	Price   int    `json:"price" gorm:"not null;default:0"`
	Name    string `json:"name" gorm:"type:varchar(255);not null"`
	Value   int    `json:"value" gorm:"not null;default:0"`
}

func (Price) TableName() string { return "prices" }
