package models

// Post is a short text entry published by an account, optionally filed under
// a group. Feeds order posts by (created_at, id) descending.
type Post struct {
	BaseModel

	Text     string `json:"text"`
	Language string `json:"language"`
	Image    string `json:"image"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments" gorm:"constraint:OnDelete:CASCADE"`
}
