package services

import (
	"fmt"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
)

func ListComment(post models.Post) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", post.ID).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return comments, fmt.Errorf("unable to list comments: %v", err)
	}

	return comments, nil
}

func CountComment(post models.Post) (int64, error) {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", post.ID).
		Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func NewComment(user models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: user.ID,
	}

	if err := database.C.Save(&comment).Error; err != nil {
		return comment, fmt.Errorf("unable to save comment: %v", err)
	}
	return comment, nil
}
