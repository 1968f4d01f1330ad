package types

import (
	"time"
)

type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FirstName string    `gorm:"not null;column:first_name" json:"firstName"`
	LastName  string    `gorm:"not null;column:last_name" json:"lastName"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Age       int       `gorm:"not null;column:age" json:"age"`
	Version   int64     `gorm:"not null;default:0;column:version" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}
