package models

import (
	"time"
)

// Favorite records a user bookmarking an article. The composite unique index
// keeps it to at most one favorite per user and article.
type Favorite struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ArticleID     uint      `gorm:"not null;uniqueIndex:idx_favorite_pair" json:"article_id"`
	Article       Article   `gorm:"foreignKey:ArticleID" json:"article,omitempty" validate:"-"`
	FavoritedByID uint      `gorm:"not null;uniqueIndex:idx_favorite_pair" json:"favorited_by_id"`
	FavoritedBy   User      `gorm:"foreignKey:FavoritedByID" json:"favorited_by,omitempty" validate:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
