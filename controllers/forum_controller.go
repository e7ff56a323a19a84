package controllers

import (
	"net/http"

	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/gin-gonic/gin"
)

type ForumPostInput struct {
	PostText string `json:"post_text" binding:"required"`
	Photo    string `json:"photo"`
}

type ForumCommentInput struct {
	CommentText string `json:"comment_text" binding:"required"`
}

func ListPosts(c *gin.Context) {
	posts, err := services.ListPosts()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "ForumPostListDto", posts)
}

func GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := services.GetPost(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "ForumPostDto", post)
}

func CreatePost(c *gin.Context) {
	var input ForumPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := services.CreatePost(currentUserID(c), input.PostText, input.Photo)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusCreated, "ForumPostDto", post)
}

func DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeletePost(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ListComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := services.ListComments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "CommentListDto", comments)
}

func CreateComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ForumCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := services.CreateComment(currentUserID(c), id, input.CommentText)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusCreated, "CommentDto", comment)
}

func DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	if err := services.DeleteComment(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ToggleLike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	liked, likeCount, err := services.ToggleLike(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "LikeDto", gin.H{
		"liked":     liked,
		"likeCount": likeCount,
	})
}
