package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/history"
	"go.uber.org/zap"
)

// Service interface
type Service interface {
	AddCommentAndLog(ctx context.Context, input AddCommentInput) (*Comment, error)
}

type service struct {
	repo    Repository
	history history.Service
	log     *zap.Logger
}

func NewService(repo Repository, historySvc history.Service, log *zap.Logger) Service {
	return &service{repo: repo, history: historySvc, log: log}
}

// AddCommentAndLog persists the comment and then appends a history entry
// for the task. The two writes are independent: a history failure is
// logged and does not roll back the comment.
func (s *service) AddCommentAndLog(ctx context.Context, input AddCommentInput) (*Comment, error) {
	c := &Comment{
		TaskID:    input.TaskID,
		UserID:    input.UserID,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Add(ctx, c); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Comment added by user %d: %s", input.UserID, input.Text)
	fields := []history.Field{
		{Name: "TaskId", Value: fmt.Sprint(input.TaskID)},
		{Name: "UserId", Value: fmt.Sprint(input.UserID)},
		{Name: "CommentText", Value: input.Text},
	}
	if err := s.history.AddEntry(ctx, input.TaskID, description, input.UserID, fields); err != nil {
		s.log.Error("failed to record comment history",
			zap.Uint("task_id", input.TaskID),
			zap.Uint("user_id", input.UserID),
			zap.Error(err),
		)
	}

	return c, nil
}
