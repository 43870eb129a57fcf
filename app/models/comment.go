package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Body        string    `gorm:"type:text;not null" json:"body" validate:"required,min=1"`
	CommenterID uint      `gorm:"index;not null" json:"commenter_id" validate:"required"`
	Commenter   User      `gorm:"foreignKey:CommenterID" json:"commenter,omitempty" validate:"-"`
	ArticleID   uint      `gorm:"index;not null" json:"article_id" validate:"required"`
	Article     Article   `gorm:"foreignKey:ArticleID" json:"article,omitempty" validate:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Comment) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
