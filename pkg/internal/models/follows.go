package models

import "time"

// Follow is a directed edge meaning user receives author's posts in their
// follow timeline. The pair is unique at the storage layer, which keeps the
// toggle idempotent even under concurrent requests.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_follow_edge"`
	AuthorID uint `json:"author_id" gorm:"uniqueIndex:idx_follow_edge"`
}
