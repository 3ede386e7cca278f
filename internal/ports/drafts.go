package ports

import (
	"time"

	"drafts/internal/domain"
)

// DraftRepository defines the interface for drafts storage operations
type DraftRepository interface {
	// Root returns the drafts directory being scanned
	Root() string

	// Scan walks the drafts directory and returns every regular file in walk order
	Scan() (domain.Listing, error)

	// Publish moves a draft into postsDir, stamping its date
	Publish(draftPath, postsDir string, day time.Time) (string, error)
}
