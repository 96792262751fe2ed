package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"confessd/api"
	"confessd/feed/domain"

	"github.com/gin-gonic/gin"
)

// bearerToken extracts the caller's access token, if any. No token is a
// normal anonymous caller, so there is nothing to validate here.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req api.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projection, err := h.posts.CreatePost(c.Request.Context(), req.Content, req.IsAnonymous, bearerToken(c))
	if err != nil {
		status, msg := createPostError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, api.CreatePostResponse{Post: api.NewPost(projection)})
}

// createPostError maps pipeline errors onto the statuses and messages
// the feed UI expects.
func createPostError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Content cannot be empty."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You must be logged in to post anonymously."
	case errors.Is(err, domain.ErrIdentityUnavailable):
		return http.StatusInternalServerError, "Failed to retrieve session."
	case errors.Is(err, domain.ErrProjectionInconsistency):
		return http.StatusInternalServerError, "Post created, but failed to fetch its details."
	default:
		return http.StatusInternalServerError, "Failed to create post."
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter."})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset parameter."})
		return
	}

	projections, err := h.posts.Feed(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed."})
		return
	}

	posts := make([]api.Post, 0, len(projections))
	for _, p := range projections {
		posts = append(posts, api.NewPost(p))
	}

	c.JSON(http.StatusOK, api.FeedResponse{Posts: posts})
}
