package m_campaign

// Field name constants for the campaigns table.
const (
	TableName = "campaigns"

	CampID    = "camp_id"
	ItemID    = "item_id"
	MinQuan   = "min_quan"
	DiscType  = "disc_type"
	DiscVal   = "disc_val"
	CreatedAt = "created_at"
)
