package domain

// Machine is one member of the fixed fleet. PricingID is a weak reference to
// a pricing model: it records an association, never an ownership, and is not
// validated against the catalog when written.
type Machine struct {
	ID        string  `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string  `json:"name" gorm:"type:varchar(255)"`
	PricingID *string `json:"pricing_id" gorm:"column:pricing_id;type:uuid"`
}

func (Machine) TableName() string { return "machines" }
