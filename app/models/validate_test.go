package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Rows are routinely built with only the foreign-key ids set; the unloaded
// association structs must not trip required-field validation.

func TestArticleValidatesWithoutLoadedAuthor(t *testing.T) {
	a := &Article{Title: "Title", Slug: "title", Body: "body", AuthorID: 1}
	assert.NoError(t, a.Validate())
}

func TestArticleValidateRequiresFields(t *testing.T) {
	a := &Article{Title: "Title", Body: "body", AuthorID: 1}
	assert.Error(t, a.Validate())
}

func TestCommentValidatesWithoutLoadedAssociations(t *testing.T) {
	c := &Comment{Body: "body", CommenterID: 1, ArticleID: 1}
	assert.NoError(t, c.Validate())
}

func TestNotificationValidatesWithoutLoadedAssociations(t *testing.T) {
	n := &Notification{Type: NOTIFICATION_LIKE, Message: "msg", UserID: 1, SenderID: 2}
	assert.NoError(t, n.Validate())
}

func TestNotificationAcceptsCallerDefinedType(t *testing.T) {
	n := &Notification{Type: "digest", Message: "msg", UserID: 1, SenderID: 2}
	assert.NoError(t, n.Validate())
}

func TestNotificationValidateRequiresTypeAndMessage(t *testing.T) {
	n := &Notification{Message: "msg", UserID: 1, SenderID: 2}
	assert.Error(t, n.Validate())

	n = &Notification{Type: NOTIFICATION_SYSTEM, UserID: 1, SenderID: 2}
	assert.Error(t, n.Validate())
}
