package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductName string          `gorm:"uniqueIndex;not null;size:100;column:product_name" json:"productName"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;column:price" json:"price"`
	Version     int64           `gorm:"not null;default:0;column:version" json:"-"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
