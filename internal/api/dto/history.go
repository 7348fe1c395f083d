package dto

import (
	"time"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/history"
)

// HistoryResponse represents one audit record in API responses
type HistoryResponse struct {
	ID          uint      `json:"id"`
	TaskID      uint      `json:"task_id"`
	Description string    `json:"description"`
	ModifiedAt  time.Time `json:"modified_at"`
	UserID      uint      `json:"user_id"`
}

// HistoryListToResponse maps a slice of history entries
func HistoryListToResponse(entries []history.History) []HistoryResponse {
	out := make([]HistoryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryResponse{
			ID:          e.ID,
			TaskID:      e.TaskID,
			Description: e.Description,
			ModifiedAt:  e.ModifiedAt,
			UserID:      e.UserID,
		}
	}
	return out
}
