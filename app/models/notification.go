package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Conventional type tags. The column is a free string so the calling layer
// can introduce new event kinds without a schema change.
const (
	NOTIFICATION_LIKE     = "like"
	NOTIFICATION_COMMENT  = "comment"
	NOTIFICATION_FAVORITE = "favorite"
	NOTIFICATION_FOLLOW   = "follow"
	NOTIFICATION_SYSTEM   = "system"
)

// Notification is a typed message from sender to recipient. Producing them
// on engagement events is the calling layer's job; this store only keeps and
// serves them. CreatedAt exists so listings have a stable newest-first order.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(100);not null" json:"type" validate:"required,max=100"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required"`
	UserID    uint      `gorm:"index;not null" json:"user_id" validate:"required"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	SenderID  uint      `gorm:"index;not null" json:"sender_id" validate:"required"`
	Sender    User      `gorm:"foreignKey:SenderID" json:"sender,omitempty" validate:"-"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (n *Notification) Validate() error {
	v := validator.New()

	return v.Struct(n)
}
