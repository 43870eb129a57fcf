package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/security"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db     *gorm.DB
	hasher *security.Hasher
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, hasher: security.NewHasher(0)}
}

// Create inserts a validated user. A duplicate email surfaces as a conflict.
func (r *userRepository) Create(user *models.User) error {
	if err := user.Validate(); err != nil {
		return storeerr.From(err)
	}
	return storeerr.From(r.db.Create(user).Error)
}

// CreateUser hashes the password, builds a regular user and inserts it as a
// single atomic write.
func (r *userRepository) CreateUser(username, email, password, bio string) (*models.User, error) {
	return r.createAccount(username, email, password, bio, false)
}

// CreateAdmin is CreateUser with active, staff and admin flags set.
func (r *userRepository) CreateAdmin(username, email, password, bio string) (*models.User, error) {
	return r.createAccount(username, email, password, bio, true)
}

// createAccount hashes through the worker pool so a burst of signups cannot
// monopolize the CPU, then inserts the row as a single atomic write.
func (r *userRepository) createAccount(username, email, password, bio string, admin bool) (*models.User, error) {
	hash, err := r.hasher.Hash(context.Background(), password)
	if err != nil {
		return nil, storeerr.From(err)
	}
	user, err := models.NewUserWithHash(username, email, hash, bio, admin)
	if err != nil {
		return nil, storeerr.From(err)
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, storeerr.From(err)
	}
	return user, nil
}

// Authenticate looks the user up by email and verifies the password against
// the stored hash. A wrong password reports not-found, same as an unknown
// email, so callers cannot distinguish the two.
func (r *userRepository) Authenticate(email, password string) (*models.User, error) {
	user, err := r.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, storeerr.NotFound("no user with matching credentials")
	}
	return user, nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, storeerr.From(err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, storeerr.From(err)
	}
	return &user, nil
}

// Update persists the user's current field values. The password hash is
// written verbatim; hashing happens only in SetPassword. UpdatedAt is
// refreshed by the same write.
func (r *userRepository) Update(user *models.User) error {
	if err := user.Validate(); err != nil {
		return storeerr.From(err)
	}
	return storeerr.From(r.db.Save(user).Error)
}

// Delete removes the user and everything it owns in one transaction:
// authored articles with their comments/favorites/likes, the user's own
// comments, favorites and likes on other articles, follow edges in both
// directions, and notifications where the user is recipient or sender.
// Any failure rolls the whole cascade back.
func (r *userRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		var articleIDs []uint
		if err := tx.Model(&models.Article{}).Where("author_id = ?", id).Pluck("id", &articleIDs).Error; err != nil {
			return err
		}
		if len(articleIDs) > 0 {
			if err := tx.Where("article_id IN ?", articleIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("article_id IN ?", articleIDs).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("article_id IN ?", articleIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", articleIDs).Delete(&models.Article{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("commenter_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("favorited_by_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		// Both edge directions: a dangling followed_id row serves no query.
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR sender_id = ?", id, id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	return storeerr.From(err)
}

// List retrieves a paginated list of users
func (r *userRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, storeerr.From(err)
	}
	return users, nil
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, storeerr.From(err)
}
