package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create inserts an article. The author must exist (reference error
// otherwise) and the slug must be unique (conflict on collision).
func (r *articleRepository) Create(article *models.Article) error {
	if err := article.Validate(); err != nil {
		return storeerr.From(err)
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, article.AuthorID, "author"); err != nil {
			return err
		}
		return tx.Create(article).Error
	})
	return storeerr.From(err)
}

// GetByID retrieves an article by its ID
func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, storeerr.From(err)
	}
	return &article, nil
}

// GetBySlug retrieves an article by its unique slug
func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, storeerr.From(err)
	}
	return &article, nil
}

// GetByAuthor retrieves a paginated list of one author's articles
func (r *articleRepository) GetByAuthor(authorID uint, offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return articles, nil
}

// Update persists mutated fields. A changed slug is re-validated for
// uniqueness by the index; UpdatedAt is refreshed in the same write.
func (r *articleRepository) Update(article *models.Article) error {
	if err := article.Validate(); err != nil {
		return storeerr.From(err)
	}
	return storeerr.From(r.db.Save(article).Error)
}

// Delete removes the article together with its comments, favorites and
// likes in one transaction. Follows and notifications reference only users
// and are left alone.
func (r *articleRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, id).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
	return storeerr.From(err)
}

// List retrieves a paginated list of articles, newest first
func (r *articleRepository) List(offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return articles, nil
}

// Count returns the total number of articles
func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, storeerr.From(err)
}

// CountByAuthor returns the number of articles by one author
func (r *articleRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, storeerr.From(err)
}

// CommentCount returns the number of comments on an article
func (r *articleRepository) CommentCount(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, storeerr.From(err)
}
