package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// likeRepository implements the LikeRepository interface
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository instance
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like records a like. Liking twice hits the unique pair index.
func (r *likeRepository) Like(userID, articleID uint) (*models.Like, error) {
	like := &models.Like{UserID: userID, ArticleID: articleID}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, userID, "user"); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Article{}, articleID, "article"); err != nil {
			return err
		}
		return tx.Create(like).Error
	})
	if err != nil {
		return nil, storeerr.From(err)
	}
	return like, nil
}

// Unlike removes the like for the given pair
func (r *likeRepository) Unlike(userID, articleID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&like).Error
		if err != nil {
			return err
		}
		return tx.Delete(&like).Error
	})
	return storeerr.From(err)
}

// IsLiked reports whether the user has liked the article
func (r *likeRepository) IsLiked(userID, articleID uint) (bool, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storeerr.From(err)
	}
	return true, nil
}

// GetByUser retrieves all likes made by a user
func (r *likeRepository) GetByUser(userID uint) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("user_id = ?", userID).Find(&likes).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return likes, nil
}

// CountByArticle returns the number of likes on an article
func (r *likeRepository) CountByArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, storeerr.From(err)
}
