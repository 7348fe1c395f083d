package history

import (
	"time"
)

// History is an immutable audit record describing one event that happened
// to a task. Rows are append-only; there is no update or delete path.
type History struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TaskID      uint      `json:"task_id" gorm:"not null;index:idx_history_task"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ModifiedAt  time.Time `json:"modified_at" gorm:"not null;index:idx_history_modified"`
	UserID      uint      `json:"user_id"`
}

// Field is one (name, rendered value) pair attached to a history entry.
// Call sites build the ordered list explicitly; the actor id travels as a
// separate parameter instead of being sniffed out of a payload.
type Field struct {
	Name  string
	Value string
}
