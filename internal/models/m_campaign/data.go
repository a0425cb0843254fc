package m_campaign

import "time"

// Data represents the database model for the campaigns table.
type Data struct {
	CampID    string
	ItemID    int64
	MinQuan   int64
	DiscType  string
	DiscVal   float64
	CreatedAt time.Time
}
