package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a customer's purchase. Its product set only
// ever grows and TotalAmount is always recomputed from that set, never
// adjusted incrementally. Related orders for a customer or product are
// resolved by query rather than held as back-references on those entities.
type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Date        time.Time       `gorm:"not null;column:date" json:"date"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;column:total_amount" json:"totalAmount"`
	CustomerID  int64           `gorm:"not null;index;column:customer_id" json:"customerId"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Products    []*Product      `gorm:"many2many:order_products" json:"products"`
	Version     int64           `gorm:"not null;default:0;column:version" json:"-"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) HasProduct(productID int64) bool {
	for _, p := range o.Products {
		if p != nil && p.ID == productID {
			return true
		}
	}
	return false
}

// RecomputeTotal re-derives TotalAmount as the sum of the current product
// prices. The total must never drift from the product set.
func (o *Order) RecomputeTotal() {
	total := decimal.Zero
	for _, p := range o.Products {
		if p != nil {
			total = total.Add(p.Price)
		}
	}
	o.TotalAmount = total
}
