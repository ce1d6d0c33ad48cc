package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
)

// FeedOrder is the canonical timeline ordering, newest first with the id as
// the tie breaker.
const FeedOrder = "created_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

// FilterPostFromFollowed narrows tx down to posts written by authors the
// user follows.
func FilterPostFromFollowed(tx *gorm.DB, user models.Account) *gorm.DB {
	return tx.Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", user.ID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// GetPostWithAuthor resolves a post by id scoped to the author's username,
// matching the /:username/:postId address form.
func GetPostWithAuthor(tx *gorm.DB, id uint, author string) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Joins("JOIN accounts ON accounts.id = posts.author_id").
		Where("posts.id = ? AND accounts.name = ?", id, author).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	if take >= 0 {
		tx = tx.Limit(take)
	}
	if offset >= 0 {
		tx = tx.Offset(offset)
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = user.ID
	item.Language = DetectLanguage(item.Text)

	start := time.Now()
	if err := database.C.Save(&item).Error; err != nil {
		return item, fmt.Errorf("unable to save post: %v", err)
	}

	log.Debug().Dur("elapsed", time.Since(start)).Uint("author", user.ID).Msg("The post is posted.")
	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	item.Language = DetectLanguage(item.Text)

	err := database.C.Save(&item).Error

	return item, err
}

func DeletePost(item models.Post) error {
	return database.C.Delete(&item).Error
}
