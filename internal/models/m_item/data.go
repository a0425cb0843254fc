package m_item

import "time"

// Data represents the database model for the items table.
type Data struct {
	ItemID    int64
	ItemName  string
	ItemPrice float64
	ItemStock int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
