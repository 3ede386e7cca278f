package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"drafts/internal/domain"
)

// Repository implements ports.DraftRepository using the filesystem
type Repository struct {
	root string
}

// NewRepository creates a new filesystem repository rooted at the drafts directory
func NewRepository(root string) *Repository {
	return &Repository{root: expandHome(root)}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Root returns the drafts directory
func (r *Repository) Root() string {
	return r.root
}

// Scan walks the drafts directory depth-first and returns its regular files.
// Directories and symbolic links are skipped. The first error aborts the walk.
func (r *Repository) Scan() (domain.Listing, error) {
	walkRoot, err := r.resolveRoot()
	if err != nil {
		return nil, err
	}

	var listing domain.Listing
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		path = r.underRoot(walkRoot, path)
		if err != nil {
			return &domain.IOError{Op: "scan", Path: path, Err: err}
		}
		if d.Type().IsRegular() {
			listing = append(listing, domain.Draft{Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// resolveRoot follows the drafts root when it is itself a symlink.
// Symlinks found below the root are still skipped by Scan.
func (r *Repository) resolveRoot() (string, error) {
	info, err := os.Lstat(r.root)
	if err != nil {
		return "", &domain.IOError{Op: "scan", Path: r.root, Err: err}
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return r.root, nil
	}
	resolved, err := filepath.EvalSymlinks(r.root)
	if err != nil {
		return "", &domain.IOError{Op: "scan", Path: r.root, Err: err}
	}
	return resolved, nil
}

// underRoot reports a walked path relative to the configured root
func (r *Repository) underRoot(walkRoot, path string) string {
	if walkRoot == r.root {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(r.root, rel)
}

// Publish stamps the draft with day and moves it to postsDir as <day>-<name>.
// The draft must be a regular file inside the drafts directory.
func (r *Repository) Publish(draftPath, postsDir string, day time.Time) (string, error) {
	if err := r.checkInside(draftPath); err != nil {
		return "", err
	}

	info, err := os.Lstat(draftPath)
	if err != nil {
		return "", &domain.IOError{Op: "publish", Path: draftPath, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &domain.PublishError{Path: draftPath, Reason: "not a regular file"}
	}

	postsDir = expandHome(postsDir)
	postPath := filepath.Join(postsDir, domain.PostName(info.Name(), day))

	content, err := os.ReadFile(draftPath)
	if err != nil {
		return "", &domain.IOError{Op: "read", Path: draftPath, Err: err}
	}

	if err := os.MkdirAll(postsDir, 0755); err != nil {
		return "", &domain.IOError{Op: "mkdir", Path: postsDir, Err: err}
	}

	// Write the stamped copy first so a failed write leaves the draft untouched
	if err := writeNew(postPath, domain.StampDate(content, day), info.Mode().Perm()); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &domain.PublishError{Path: draftPath, Reason: fmt.Sprintf("%s already exists", postPath)}
		}
		return "", &domain.IOError{Op: "write", Path: postPath, Err: err}
	}

	if err := os.Remove(draftPath); err != nil {
		os.Remove(postPath)
		return "", &domain.IOError{Op: "remove", Path: draftPath, Err: err}
	}

	return postPath, nil
}

// writeNew creates path exclusively, so an existing post is never overwritten
func writeNew(path string, data []byte, perm fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func (r *Repository) checkInside(draftPath string) error {
	root, err := filepath.Abs(r.root)
	if err != nil {
		return &domain.IOError{Op: "publish", Path: r.root, Err: err}
	}
	path, err := filepath.Abs(draftPath)
	if err != nil {
		return &domain.IOError{Op: "publish", Path: draftPath, Err: err}
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return &domain.PublishError{Path: draftPath, Reason: fmt.Sprintf("not inside %s", r.root)}
	}
	return nil
}
