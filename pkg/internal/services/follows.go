package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
)

// GetFollow returns the edge between user and author, or nil when there is
// none.
func GetFollow(user uint, author uint) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", user, author).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

func IsFollowing(user models.Account, author models.Account) bool {
	follow, err := GetFollow(user.ID, author.ID)
	return err == nil && follow != nil
}

// FollowAccount creates the edge with a conditional insert, so repeated or
// racing calls still leave a single row. Self-follows are silently ignored.
func FollowAccount(user models.Account, author models.Account) error {
	if user.ID == author.ID {
		return nil
	}

	follow := models.Follow{
		UserID:   user.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("unable to create follow edge: %v", err)
	}
	return nil
}

// UnfollowAccount removes the matching edge when present, a no-op otherwise.
func UnfollowAccount(user models.Account, author models.Account) error {
	if err := database.C.
		Where("user_id = ? AND author_id = ?", user.ID, author.ID).
		Delete(&models.Follow{}).Error; err != nil {
		return fmt.Errorf("unable to delete follow edge: %v", err)
	}
	return nil
}
