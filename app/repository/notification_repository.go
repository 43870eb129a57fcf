package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// notificationRepository implements the NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create stores a notification after checking recipient and sender exist.
// Deciding when to produce one (on follow, on comment) is the caller's job.
func (r *notificationRepository) Create(notification *models.Notification) error {
	if err := notification.Validate(); err != nil {
		return storeerr.From(err)
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, notification.UserID, "recipient"); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.User{}, notification.SenderID, "sender"); err != nil {
			return err
		}
		return tx.Create(notification).Error
	})
	return storeerr.From(err)
}

// GetByID retrieves a notification by its ID
func (r *notificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, storeerr.From(err)
	}
	return &notification, nil
}

// GetForUser retrieves a recipient's notifications, newest first. The id
// tiebreak keeps the order stable when timestamps collide.
func (r *notificationRepository) GetForUser(userID uint, offset, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&notifications).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return notifications, nil
}

// GetUnreadForUser retrieves a recipient's unread notifications, newest first
func (r *notificationRepository) GetUnreadForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC, id DESC").Find(&notifications).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return notifications, nil
}

// MarkRead marks one notification as read
func (r *notificationRepository) MarkRead(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var notification models.Notification
		if err := tx.First(&notification, id).Error; err != nil {
			return err
		}
		return tx.Model(&notification).Update("is_read", true).Error
	})
	return storeerr.From(err)
}

// MarkAllRead marks every notification of a recipient as read
func (r *notificationRepository) MarkAllRead(userID uint) error {
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	return storeerr.From(err)
}

// CountUnread returns the number of unread notifications for a recipient
func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, storeerr.From(err)
}

// Delete removes a notification by its ID
func (r *notificationRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var notification models.Notification
		if err := tx.First(&notification, id).Error; err != nil {
			return err
		}
		return tx.Delete(&notification).Error
	})
	return storeerr.From(err)
}
