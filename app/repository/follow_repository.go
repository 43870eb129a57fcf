package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// followRepository implements the FollowRepository interface
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository instance
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts the directed edge follower -> followed. Self-follows are
// rejected before the store is touched; a duplicate edge hits the unique
// index and reports a conflict.
func (r *followRepository) Follow(followerID, followedID uint) (*models.Follow, error) {
	if followerID == followedID {
		return nil, storeerr.Validation("user %d cannot follow themselves", followerID)
	}
	edge := &models.Follow{FollowerID: followerID, FollowedID: followedID}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, followerID, "follower"); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.User{}, followedID, "followed user"); err != nil {
			return err
		}
		return tx.Create(edge).Error
	})
	if err != nil {
		return nil, storeerr.From(err)
	}
	return edge, nil
}

// Unfollow removes the edge; a missing edge reports not-found
func (r *followRepository) Unfollow(followerID, followedID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var edge models.Follow
		err := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).First(&edge).Error
		if err != nil {
			return err
		}
		return tx.Delete(&edge).Error
	})
	return storeerr.From(err)
}

// IsFollowing reports whether the edge follower -> followed exists
func (r *followRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var edge models.Follow
	err := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storeerr.From(err)
	}
	return true, nil
}

// Followers lists the users following the given user
func (r *followRepository) Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return users, nil
}

// Following lists the users the given user follows
func (r *followRepository) Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return users, nil
}

// FollowerCount returns how many users follow the given user
func (r *followRepository) FollowerCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, storeerr.From(err)
}

// FollowingCount returns how many users the given user follows
func (r *followRepository) FollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, storeerr.From(err)
}
