package rest

import (
	"errors"
	"net/http"

	"confessd/api"
	"confessd/feed/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateComment(c *gin.Context) {
	var req api.CommentProto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.CreateComment(c.Request.Context(), req.PostID, req.Comment, req.IsReplyBot, bearerToken(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment cannot be empty."})
		case errors.Is(err, domain.ErrIdentityUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve session."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment."})
		}
		return
	}

	c.JSON(http.StatusCreated, api.CreateCommentResponse{Comment: api.NewComment(comment)})
}

func (h *Handler) GetComments(c *gin.Context) {
	postID := c.Param("postId")

	comments, err := h.comments.ListComments(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments."})
		return
	}

	out := make([]api.Comment, 0, len(comments))
	for _, comment := range comments {
		out = append(out, api.NewComment(comment))
	}

	c.JSON(http.StatusOK, out)
}
