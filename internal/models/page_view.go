package models

import "time"

// PageView is one anonymised visit to a public page. The client address is
// stored only as a salted hash.
type PageView struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	HashedIP  string    `gorm:"type:varchar(16);index" json:"hashed_ip"`
	UserAgent string    `gorm:"type:text" json:"user_agent"`
	Path      string    `gorm:"type:varchar(255);index" json:"path"`
	Referrer  string    `gorm:"type:text" json:"referrer,omitempty"`
}
