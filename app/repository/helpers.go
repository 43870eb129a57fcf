package repository

import (
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

// ensureExists verifies a referenced row is present inside the caller's
// transaction, so a foreign-key violation is reported as a typed reference
// error instead of whatever the driver produces.
func ensureExists(tx *gorm.DB, model interface{}, id uint, what string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return storeerr.Reference("%s %d does not exist", what, id)
	}
	return nil
}
