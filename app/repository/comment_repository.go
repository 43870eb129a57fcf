package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment after checking both referenced rows exist.
func (r *commentRepository) Create(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return storeerr.From(err)
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, comment.CommenterID, "commenter"); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Article{}, comment.ArticleID, "article"); err != nil {
			return err
		}
		return tx.Create(comment).Error
	})
	return storeerr.From(err)
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, storeerr.From(err)
	}
	return &comment, nil
}

// Update persists the comment body; UpdatedAt refreshes in the same write.
func (r *commentRepository) Update(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return storeerr.From(err)
	}
	return storeerr.From(r.db.Model(comment).Update("body", comment.Body).Error)
}

// Delete removes a comment by its ID
func (r *commentRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
	return storeerr.From(err)
}

// GetByArticle retrieves an article's comments, oldest first
func (r *commentRepository) GetByArticle(articleID uint, offset, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return comments, nil
}

// GetByUser retrieves a user's comments, newest first
func (r *commentRepository) GetByUser(userID uint, offset, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("commenter_id = ?", userID).
		Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return comments, nil
}

// CountByArticle returns the number of comments on an article
func (r *commentRepository) CountByArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, storeerr.From(err)
}
