package models

import "time"

// VLEActivity is one dated click-count event joined to its learning resource.
// Multiple rows per (enrollment, item, date) are possible and must be summed.
type VLEActivity struct {
	VLEID        int64     `db:"vle_id" json:"vle_id"`
	VLEType      string    `db:"vle_type" json:"vle_type"`
	Title        string    `db:"title" json:"title"`
	ActivityDate time.Time `db:"activity_date" json:"activity_date"`
	Clicks       int64     `db:"clicks" json:"clicks"`
}
