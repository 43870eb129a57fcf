package models

// Like records a user liking an article, at most once per pair.
type Like struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_like_pair" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	ArticleID uint    `gorm:"not null;uniqueIndex:idx_like_pair" json:"article_id"`
	Article   Article `gorm:"foreignKey:ArticleID" json:"article,omitempty" validate:"-"`
}
