package dto

import (
	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/comment"
)

// AddCommentRequest represents the request body for commenting on a task
type AddCommentRequest struct {
	TaskID uint   `json:"task_id" binding:"required"`
	UserID uint   `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// AddCommentInput maps the request to the domain input
func (r *AddCommentRequest) AddCommentInput() comment.AddCommentInput {
	return comment.AddCommentInput{
		TaskID: r.TaskID,
		UserID: r.UserID,
		Text:   r.Text,
	}
}
