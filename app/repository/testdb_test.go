package repository

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/database"
)

// newTestDB opens a throwaway sqlite database with the full schema. The
// sqlite driver translates constraint violations the same way the mysql
// driver does, so the conflict/reference paths behave identically.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestRepos(t *testing.T) (*Repositories, *gorm.DB) {
	t.Helper()
	t.Setenv("HASH_COST", "4") // keep bcrypt cheap in tests
	db := newTestDB(t)
	return NewRepositories(db), db
}

func seedUser(t *testing.T, repos *Repositories, name string) *models.User {
	t.Helper()
	u, err := repos.User.CreateUser(name, fmt.Sprintf("%s@example.com", name), "s3cret-pw", "")
	require.NoError(t, err)
	return u
}

func seedArticle(t *testing.T, repos *Repositories, authorID uint, slug string) *models.Article {
	t.Helper()
	a := &models.Article{
		Title:    "Title " + slug,
		Slug:     slug,
		Body:     "body",
		Category: "general",
		AuthorID: authorID,
	}
	require.NoError(t, repos.Article.Create(a))
	return a
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
