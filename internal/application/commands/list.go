package commands

import (
	"context"

	"go.uber.org/zap"

	"drafts/internal/domain"
	"drafts/internal/logging"
	"drafts/internal/ports"
)

// ListDraftsCommand scans the drafts directory once
type ListDraftsCommand struct {
	repo ports.DraftRepository
}

// NewListDraftsCommand creates a new ListDraftsCommand
func NewListDraftsCommand(repo ports.DraftRepository) *ListDraftsCommand {
	return &ListDraftsCommand{repo: repo}
}

// Execute runs the list drafts command
func (c *ListDraftsCommand) Execute(ctx context.Context) (domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listing, err := c.repo.Scan()
	if err != nil {
		logging.Debug("scan failed", zap.String("root", c.repo.Root()), zap.Error(err))
		return nil, err
	}

	logging.Debug("scan complete", zap.String("root", c.repo.Root()), zap.Int("count", len(listing)))
	return listing, nil
}
