package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// favoriteRepository implements the FavoriteRepository interface
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository instance
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Favorite records a bookmark. Both rows must exist; favoriting the same
// article twice hits the unique pair index and reports a conflict.
func (r *favoriteRepository) Favorite(articleID, userID uint) (*models.Favorite, error) {
	fav := &models.Favorite{ArticleID: articleID, FavoritedByID: userID}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, userID, "user"); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Article{}, articleID, "article"); err != nil {
			return err
		}
		return tx.Create(fav).Error
	})
	if err != nil {
		return nil, storeerr.From(err)
	}
	return fav, nil
}

// Unfavorite removes the bookmark for the given pair
func (r *favoriteRepository) Unfavorite(articleID, userID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var fav models.Favorite
		err := tx.Where("article_id = ? AND favorited_by_id = ?", articleID, userID).First(&fav).Error
		if err != nil {
			return err
		}
		return tx.Delete(&fav).Error
	})
	return storeerr.From(err)
}

// IsFavorited reports whether the user has favorited the article
func (r *favoriteRepository) IsFavorited(articleID, userID uint) (bool, error) {
	var fav models.Favorite
	err := r.db.Where("article_id = ? AND favorited_by_id = ?", articleID, userID).First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storeerr.From(err)
	}
	return true, nil
}

// GetByUser retrieves a user's favorites, newest first
func (r *favoriteRepository) GetByUser(userID uint) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := r.db.Where("favorited_by_id = ?", userID).Order("created_at DESC").Find(&favs).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return favs, nil
}

// CountByArticle returns the number of favorites on an article
func (r *favoriteRepository) CountByArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, storeerr.From(err)
}
