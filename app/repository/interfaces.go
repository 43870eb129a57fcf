package repository

import (
	"github.com/inkwell-app/inkwell/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	CreateUser(username, email, password, bio string) (*models.User, error)
	CreateAdmin(username, email, password, bio string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// ArticleRepository defines the interface for article-related database operations
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetByAuthor(authorID uint, offset, limit int) ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Article, error)
	Count() (int64, error)
	CountByAuthor(authorID uint) (int64, error)
	CommentCount(articleID uint) (int64, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
	GetByArticle(articleID uint, offset, limit int) ([]models.Comment, error)
	GetByUser(userID uint, offset, limit int) ([]models.Comment, error)
	CountByArticle(articleID uint) (int64, error)
}

// FavoriteRepository defines the interface for favorite-related database operations
type FavoriteRepository interface {
	Favorite(articleID, userID uint) (*models.Favorite, error)
	Unfavorite(articleID, userID uint) error
	IsFavorited(articleID, userID uint) (bool, error)
	GetByUser(userID uint) ([]models.Favorite, error)
	CountByArticle(articleID uint) (int64, error)
}

// LikeRepository defines the interface for like-related database operations
type LikeRepository interface {
	Like(userID, articleID uint) (*models.Like, error)
	Unlike(userID, articleID uint) error
	IsLiked(userID, articleID uint) (bool, error)
	GetByUser(userID uint) ([]models.Like, error)
	CountByArticle(articleID uint) (int64, error)
}

// FollowRepository defines the interface for the directed follow graph
type FollowRepository interface {
	Follow(followerID, followedID uint) (*models.Follow, error)
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	Followers(userID uint) ([]models.User, error)
	Following(userID uint) ([]models.User, error)
	FollowerCount(userID uint) (int64, error)
	FollowingCount(userID uint) (int64, error)
}

// NotificationRepository defines the interface for notification-related operations
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetForUser(userID uint, offset, limit int) ([]models.Notification, error)
	GetUnreadForUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
	CountUnread(userID uint) (int64, error)
	Delete(id uint) error
}
