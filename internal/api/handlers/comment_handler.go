package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/comment"
)

// CommentHandler handles HTTP requests for task comments
type CommentHandler struct {
	service comment.Service
}

// NewCommentHandler creates a new CommentHandler instance
func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := h.service.AddCommentAndLog(c.Request.Context(), req.AddCommentInput()); err != nil {
		respondInternal(c)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment added successfully and logged in history."})
}
