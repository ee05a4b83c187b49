package entity

import "fmt"

// Address is a value type embedded into Profile. It has no table and no
// lifecycle of its own.
type Address struct {
	Street       string `gorm:"type:varchar(200);not null" json:"street"`
	Neighborhood string `gorm:"type:varchar(200);not null" json:"neighborhood"`
	Number       string `gorm:"type:varchar(50);not null" json:"number"`
	City         string `gorm:"type:varchar(200);not null" json:"city"`
	State        string `gorm:"type:varchar(200);not null" json:"state"`
	PostalCode   string `gorm:"type:varchar(50);not null" json:"postal_code"`
	Country      string `gorm:"type:varchar(200);not null" json:"country"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s", a.Street, a.Number, a.Neighborhood, a.City, a.State, a.Country)
}
