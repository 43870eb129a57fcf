package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/app/models"
	"github.com/inkwell-app/inkwell/internal/pkg/storeerr"
)

func TestCreateArticleMissingAuthor(t *testing.T) {
	repos, db := newTestRepos(t)

	err := repos.Article.Create(&models.Article{
		Title: "Orphan", Slug: "orphan", Body: "body", AuthorID: 999,
	})
	assert.ErrorIs(t, err, storeerr.ErrReference)
	assert.Equal(t, int64(0), count(t, db, &models.Article{}))
}

func TestCreateArticleValidation(t *testing.T) {
	repos, _ := newTestRepos(t)
	author := seedUser(t, repos, "author")

	err := repos.Article.Create(&models.Article{
		Title: "", Slug: "no-title", Body: "body", AuthorID: author.ID,
	})
	assert.ErrorIs(t, err, storeerr.ErrValidation)
}

func TestDuplicateSlugConflict(t *testing.T) {
	repos, db := newTestRepos(t)
	author := seedUser(t, repos, "author")

	seedArticle(t, repos, author.ID, "hello-world")

	err := repos.Article.Create(&models.Article{
		Title: "Another", Slug: "hello-world", Body: "body", AuthorID: author.ID,
	})
	assert.ErrorIs(t, err, storeerr.ErrConflict)
	assert.Equal(t, int64(1), count(t, db, &models.Article{}))
}

func TestUpdateArticleSlugCollision(t *testing.T) {
	repos, _ := newTestRepos(t)
	author := seedUser(t, repos, "author")

	seedArticle(t, repos, author.ID, "taken")
	second := seedArticle(t, repos, author.ID, "free")

	second.Slug = "taken"
	err := repos.Article.Update(second)
	assert.ErrorIs(t, err, storeerr.ErrConflict)
}

func TestDeleteArticleCascades(t *testing.T) {
	repos, db := newTestRepos(t)

	author := seedUser(t, repos, "author")
	reader := seedUser(t, repos, "reader")

	doomed := seedArticle(t, repos, author.ID, "doomed")
	kept := seedArticle(t, repos, author.ID, "kept")

	for _, articleID := range []uint{doomed.ID, kept.ID} {
		require.NoError(t, repos.Comment.Create(&models.Comment{
			Body: "comment", CommenterID: reader.ID, ArticleID: articleID,
		}))
		_, err := repos.Favorite.Favorite(articleID, reader.ID)
		require.NoError(t, err)
		_, err = repos.Like.Like(reader.ID, articleID)
		require.NoError(t, err)
	}
	_, err := repos.Follow.Follow(reader.ID, author.ID)
	require.NoError(t, err)

	require.NoError(t, repos.Article.Delete(doomed.ID))

	// Only the doomed article's engagement is gone.
	assert.Equal(t, int64(1), count(t, db, &models.Article{}))
	assert.Equal(t, int64(1), count(t, db, &models.Comment{}))
	assert.Equal(t, int64(1), count(t, db, &models.Favorite{}))
	assert.Equal(t, int64(1), count(t, db, &models.Like{}))
	// Follows reference only users and are untouched.
	assert.Equal(t, int64(1), count(t, db, &models.Follow{}))
	assert.Equal(t, int64(2), count(t, db, &models.User{}))

	n, err := repos.Comment.CountByArticle(kept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGetBySlugAndCommentCount(t *testing.T) {
	repos, _ := newTestRepos(t)
	author := seedUser(t, repos, "author")
	article := seedArticle(t, repos, author.ID, "findable")

	got, err := repos.Article.GetBySlug("findable")
	require.NoError(t, err)
	assert.Equal(t, article.ID, got.ID)

	_, err = repos.Article.GetBySlug("missing")
	assert.ErrorIs(t, err, storeerr.ErrNotFound)

	require.NoError(t, repos.Comment.Create(&models.Comment{
		Body: "one", CommenterID: author.ID, ArticleID: article.ID,
	}))
	require.NoError(t, repos.Comment.Create(&models.Comment{
		Body: "two", CommenterID: author.ID, ArticleID: article.ID,
	}))

	n, err := repos.Article.CommentCount(article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestArticleSerializeIncludesAllFields(t *testing.T) {
	repos, _ := newTestRepos(t)
	author := seedUser(t, repos, "author")
	article := seedArticle(t, repos, author.ID, "serialized")

	out := article.Serialize()
	assert.Equal(t, article.ID, out["id"])
	assert.Equal(t, "serialized", out["slug"])
	assert.Equal(t, author.ID, out["author_id"])
	assert.Contains(t, out, "created_at")
	assert.Contains(t, out, "updated_at")
}

func TestListByAuthor(t *testing.T) {
	repos, _ := newTestRepos(t)
	a := seedUser(t, repos, "a")
	b := seedUser(t, repos, "b")

	seedArticle(t, repos, a.ID, "a-one")
	seedArticle(t, repos, a.ID, "a-two")
	seedArticle(t, repos, b.ID, "b-one")

	articles, err := repos.Article.GetByAuthor(a.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, articles, 2)

	n, err := repos.Article.CountByAuthor(b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
