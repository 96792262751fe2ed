package rest

import (
	"confessd/feed/application"

	"github.com/gin-gonic/gin"
)

// Handler wires the feed services to HTTP.
type Handler struct {
	posts    *application.PostService
	comments *application.CommentService
	replies  *application.ReplyService
}

func NewHandler(posts *application.PostService, comments *application.CommentService, replies *application.ReplyService) *Handler {
	return &Handler{
		posts:    posts,
		comments: comments,
		replies:  replies,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	post := router.Group("post")
	{
		post.POST("/create", h.CreatePost)
		post.GET("/feed", h.GetFeed)
		post.POST("/replybot", h.ReplyBot)
		post.POST("/comment/create", h.CreateComment)
		post.GET("/comment/:postId", h.GetComments)
	}
}
