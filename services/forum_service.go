package services

import (
	"errors"
	"fmt"

	"github.com/diploma-nedashkivska/pet-care-service/config"
	"github.com/diploma-nedashkivska/pet-care-service/models"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForumPostView is a post decorated with its author name and counters for
// the public feed.
type ForumPostView struct {
	models.ForumPost
	AuthorName   string `json:"author_name"`
	CommentCount int64  `json:"comment_count"`
	LikeCount    int64  `json:"like_count"`
}

type ForumCommentView struct {
	models.ForumComment
	AuthorName string `json:"author_name"`
}

const postViewSelect = `forum_posts.*, users.full_name AS author_name,
	(SELECT count(*) FROM forum_comments WHERE forum_comments.forum_post_id = forum_posts.id) AS comment_count,
	(SELECT count(*) FROM forum_likes WHERE forum_likes.forum_post_id = forum_posts.id) AS like_count`

func ListPosts() ([]ForumPostView, error) {
	var views []ForumPostView
	err := config.DB.Table("forum_posts").
		Select(postViewSelect).
		Joins("JOIN users ON users.id = forum_posts.user_id").
		Order("forum_posts.created_at desc").
		Scan(&views).Error
	return views, err
}

// GetPost is public: the forum has no ownership scoping on reads.
func GetPost(postID uint) (*ForumPostView, error) {
	var view ForumPostView
	err := config.DB.Table("forum_posts").
		Select(postViewSelect).
		Joins("JOIN users ON users.id = forum_posts.user_id").
		Where("forum_posts.id = ?", postID).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return nil, ErrNotFound
	}
	return &view, nil
}

func CreatePost(userID uint, postText, photo string) (*models.ForumPost, error) {
	post := models.ForumPost{
		UserID:   userID,
		PostText: postText,
	}
	if photo != "" {
		url, err := utils.UploadBase64Image(photo, "forum-photos")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		post.PhotoURL = url
	}
	if err := config.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost reports a foreign post as 403, not 404: posts are publicly
// readable, so their existence is not a secret.
func DeletePost(userID, postID uint) error {
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return ErrNotFound
	}
	if post.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("forum_post_id = ?", post.ID).Delete(&models.ForumComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("forum_post_id = ?", post.ID).Delete(&models.ForumLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func ListComments(postID uint) ([]ForumCommentView, error) {
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return nil, ErrNotFound
	}
	var views []ForumCommentView
	err := config.DB.Table("forum_comments").
		Select("forum_comments.*, users.full_name AS author_name").
		Joins("JOIN users ON users.id = forum_comments.user_id").
		Where("forum_comments.forum_post_id = ?", postID).
		Order("forum_comments.created_at").
		Scan(&views).Error
	return views, err
}

func CreateComment(userID, postID uint, commentText string) (*models.ForumComment, error) {
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return nil, ErrNotFound
	}
	comment := models.ForumComment{
		ForumPostID: postID,
		UserID:      userID,
		CommentText: commentText,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func DeleteComment(userID, commentID uint) error {
	var comment models.ForumComment
	if err := config.DB.First(&comment, commentID).Error; err != nil {
		return ErrNotFound
	}
	if comment.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Delete(&comment).Error
}

// ToggleLike flips the (user, post) like row and returns the post's like
// count as of after the flip. Losing a concurrent create race counts as
// "already liked", not an error.
func ToggleLike(userID, postID uint) (liked bool, likeCount int64, err error) {
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return false, 0, ErrNotFound
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var like models.ForumLike
		findErr := tx.Where("user_id = ? AND forum_post_id = ?", userID, postID).
			First(&like).Error
		switch {
		case findErr == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// ON CONFLICT DO NOTHING keeps the transaction usable when a
			// concurrent like wins the insert; zero rows affected means the
			// row is already there, which still reads as liked.
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.ForumLike{
					UserID:      userID,
					ForumPostID: postID,
				})
			if res.Error != nil {
				return res.Error
			}
			liked = true
		default:
			return findErr
		}
		return tx.Model(&models.ForumLike{}).
			Where("forum_post_id = ?", postID).
			Count(&likeCount).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likeCount, nil
}
