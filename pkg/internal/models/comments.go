package models

type Comment struct {
	BaseModel

	Text string `json:"text"`

	PostID   uint    `json:"post_id"`
	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
