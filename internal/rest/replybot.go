package rest

import (
	"net/http"

	"confessd/api"

	"github.com/gin-gonic/gin"
)

// ReplyBot generates a follow-up comment for a post and publishes it
// through the comment-creation endpoint. The trigger is already
// detached from the create request by the time this handler runs, so
// failures here reach only the dispatcher's log.
func (h *Handler) ReplyBot(c *gin.Context) {
	var req api.ReplyBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.replies.Reply(c.Request.Context(), req.PostID, req.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reply."})
		return
	}

	c.JSON(http.StatusOK, api.ReplyBotResponse{Reply: reply})
}
