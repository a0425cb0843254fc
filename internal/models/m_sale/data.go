package m_sale

import "time"

// Data represents the database model for the sales table.
type Data struct {
	SaleID            string
	SaleDate          time.Time
	CustomerName      string
	TotalDiscountPerc int64
	TotalDiscountNum  float64
	TotalAmount       float64
	PaymentMethod     string
	PaymentInfo       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
