package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title" validate:"required,max=100"`
	Slug      string    `gorm:"uniqueIndex;type:varchar(255);not null" json:"slug" validate:"required,max=255"`
	Body      string    `gorm:"type:text;not null" json:"body" validate:"required"`
	Category  string    `gorm:"type:varchar(100)" json:"category" validate:"max=100"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id" validate:"required"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty" validate:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// Serialize returns the full public view, timestamps and author included.
func (a *Article) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         a.ID,
		"title":      a.Title,
		"slug":       a.Slug,
		"body":       a.Body,
		"category":   a.Category,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
		"author_id":  a.AuthorID,
	}
}
