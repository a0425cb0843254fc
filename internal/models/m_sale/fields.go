package m_sale

// Field name constants for the sales table.
const (
	TableName = "sales"

	SaleID            = "sale_id"
	SaleDate          = "sale_date"
	CustomerName      = "customer_name"
	TotalDiscountPerc = "total_discount_perc"
	TotalDiscountNum  = "total_discount_num"
	TotalAmount       = "total_amount"
	PaymentMethod     = "payment_method"
	PaymentInfo       = "payment_info"
	CreatedAt         = "created_at"
	UpdatedAt         = "updated_at"
)
