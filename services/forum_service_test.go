package services_test

import (
	"testing"
	"time"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggleLike(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	post, err := services.CreatePost(alice.ID, "first post", "")
	require.NoError(t, err)

	liked, count, err := services.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	// toggling twice returns to the original state and count
	liked, count, err = services.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)

	// likes from different users accumulate
	_, _, err = services.ToggleLike(alice.ID, post.ID)
	require.NoError(t, err)
	liked, count, err = services.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(2), count)
}

// A like that lands between the existence check and the insert must read
// as "already liked", and the count afterwards must still work.
func TestToggleLikeLosingInsertRace(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	post, err := services.CreatePost(alice.ID, "contested", "")
	require.NoError(t, err)

	// slip bob's like in right before ToggleLike's own insert runs
	injected := false
	err = config.DB.Callback().Create().Before("gorm:create").Register("concurrent_like", func(db *gorm.DB) {
		if injected {
			return
		}
		if _, ok := db.Statement.Dest.(*models.ForumLike); !ok {
			return
		}
		injected = true
		db.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO forum_likes (created_at, user_id, forum_post_id) VALUES (?, ?, ?)",
			time.Now(), bob.ID, post.ID,
		)
	})
	require.NoError(t, err)
	defer config.DB.Callback().Create().Remove("concurrent_like")

	liked, count, err := services.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	var rows int64
	config.DB.Model(&models.ForumLike{}).Where("forum_post_id = ?", post.ID).Count(&rows)
	assert.Equal(t, int64(1), rows, "the lost race must not produce a second row")
}

func TestToggleLikeMissingPost(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")

	_, _, err := services.ToggleLike(user.ID, 9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

// Forum posts are publicly readable, so a foreign delete is a 403
// instead of the owner-scoped 404.
func TestDeletePostForeignIsForbidden(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	post, err := services.CreatePost(alice.ID, "mine", "")
	require.NoError(t, err)

	assert.ErrorIs(t, services.DeletePost(bob.ID, post.ID), services.ErrForbidden)
	assert.ErrorIs(t, services.DeletePost(bob.ID, 9999), services.ErrNotFound)
}

func TestDeletePostCascades(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	post, err := services.CreatePost(alice.ID, "to be deleted", "")
	require.NoError(t, err)

	_, err = services.CreateComment(bob.ID, post.ID, "nice")
	require.NoError(t, err)
	_, _, err = services.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, services.DeletePost(alice.ID, post.ID))

	var comments, likes int64
	config.DB.Model(&models.ForumComment{}).Where("forum_post_id = ?", post.ID).Count(&comments)
	config.DB.Model(&models.ForumLike{}).Where("forum_post_id = ?", post.ID).Count(&likes)
	assert.Zero(t, comments)
	assert.Zero(t, likes)

	_, err = services.GetPost(post.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListPostsIncludesAuthorAndCounts(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "Alice A")
	bob := createUser(t, "b@x.com", "B")
	post, err := services.CreatePost(alice.ID, "hello forum", "")
	require.NoError(t, err)

	_, err = services.CreateComment(bob.ID, post.ID, "hi")
	require.NoError(t, err)
	_, _, err = services.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)

	posts, err := services.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.Equal(t, "Alice A", posts[0].AuthorName)
	assert.Equal(t, int64(1), posts[0].CommentCount)
	assert.Equal(t, int64(1), posts[0].LikeCount)
}

func TestDeleteCommentOwnership(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, "a@x.com", "A")
	bob := createUser(t, "b@x.com", "B")
	post, err := services.CreatePost(alice.ID, "post", "")
	require.NoError(t, err)
	comment, err := services.CreateComment(bob.ID, post.ID, "bob's comment")
	require.NoError(t, err)

	assert.ErrorIs(t, services.DeleteComment(alice.ID, comment.ID), services.ErrForbidden)
	assert.NoError(t, services.DeleteComment(bob.ID, comment.ID))
	assert.ErrorIs(t, services.DeleteComment(bob.ID, comment.ID), services.ErrNotFound)
}

func TestCommentOnMissingPost(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "a@x.com", "A")

	_, err := services.CreateComment(user.ID, 9999, "into the void")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = services.ListComments(9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
