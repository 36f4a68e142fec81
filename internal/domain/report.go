package domain

import "time"

// StoredReport describes a rendered document persisted for download.
type StoredReport struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
