package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"drafts/internal/application"
	"drafts/internal/logging"
	"drafts/internal/ports"
)

// PublishDraftResult contains the result of publishing a draft
type PublishDraftResult struct {
	DraftPath string
	PostPath  string
	Message   string
}

// PublishDraftCommand moves a draft into the posts directory
type PublishDraftCommand struct {
	repo      ports.DraftRepository
	DraftPath string
	PostsDir  string
	Day       time.Time
}

// NewPublishDraftCommand creates a new PublishDraftCommand
func NewPublishDraftCommand(repo ports.DraftRepository, draftPath, postsDir string, day time.Time) *PublishDraftCommand {
	return &PublishDraftCommand{
		repo:      repo,
		DraftPath: draftPath,
		PostsDir:  postsDir,
		Day:       day,
	}
}

// Validate checks the command inputs
func (c *PublishDraftCommand) Validate() error {
	if c.DraftPath == "" {
		return &application.ValidationError{
			Field:   "draftPath",
			Message: "draft path is required",
		}
	}

	if c.PostsDir == "" {
		return &application.ValidationError{
			Field:   "postsDir",
			Message: "posts directory is required",
		}
	}

	if c.Day.IsZero() {
		return &application.ValidationError{
			Field:   "day",
			Message: "publish date is required",
		}
	}

	return nil
}

// Execute runs the publish command
func (c *PublishDraftCommand) Execute(ctx context.Context) (*PublishDraftResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	postPath, err := c.repo.Publish(c.DraftPath, c.PostsDir, c.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to publish draft: %w", err)
	}

	logging.Info("draft published", zap.String("draft", c.DraftPath), zap.String("post", postPath))

	return &PublishDraftResult{
		DraftPath: c.DraftPath,
		PostPath:  postPath,
		Message:   fmt.Sprintf("Published %s -> %s", c.DraftPath, postPath),
	}, nil
}
