package comment

import (
	"time"
)

// Comment is append-only; there is no edit or delete operation.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TaskID    uint      `json:"task_id" gorm:"not null;index:idx_comment_task"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// AddCommentInput carries a new comment for a task together with its author.
type AddCommentInput struct {
	TaskID uint
	UserID uint
	Text   string
}
