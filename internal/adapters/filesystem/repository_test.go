package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"drafts/internal/domain"
)

func setupTestDrafts(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "_drafts")
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatalf("failed to create drafts: %v", err)
	}

	writeFile(t, filepath.Join(root, "a.md"), "---\ntitle: A\ndate: 2020-01-01\n---\nhello\n")
	writeFile(t, filepath.Join(root, "sub", "b.md"), "b")

	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestScan_ListsNestedRegularFiles(t *testing.T) {
	root := setupTestDrafts(t)
	repo := NewRepository(root)

	listing, err := repo.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "sub", "b.md"),
	}
	if got := listing.Paths(); !slices.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}

	out := listing.String()
	if !strings.HasPrefix(out, "2 files found\n") {
		t.Errorf("expected header for 2 files, got %q", out)
	}
}

func TestScan_CountsDeepTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "_drafts")
	wantCount := 0
	for _, dir := range []string{"x", "x/y", "x/y/z", "w"} {
		dirPath := filepath.Join(root, dir)
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		for _, name := range []string{"one.md", "two.md"} {
			writeFile(t, filepath.Join(dirPath, name), name)
			wantCount++
		}
	}
	// An empty directory contributes nothing
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	listing, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(listing) != wantCount {
		t.Errorf("expected %d files, got %d: %v", wantCount, len(listing), listing.Paths())
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	root := t.TempDir()

	listing, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(listing) != 0 {
		t.Errorf("expected no drafts, got %v", listing.Paths())
	}
	if got := listing.String(); got != "0 files found\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope"))

	listing, err := repo.Scan()
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !errors.Is(err, domain.ErrIO) {
		t.Errorf("expected IOError, got %T: %v", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist cause, got %v", err)
	}
	if listing != nil {
		t.Errorf("expected no partial results, got %v", listing.Paths())
	}
}

func TestScan_SkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := setupTestDrafts(t)

	if err := os.Symlink(filepath.Join(root, "a.md"), filepath.Join(root, "link.md")); err != nil {
		t.Fatalf("symlink failed: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "gone.md"), filepath.Join(root, "broken.md")); err != nil {
		t.Fatalf("symlink failed: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "sub"), filepath.Join(root, "subdir-link")); err != nil {
		t.Fatalf("symlink failed: %v", err)
	}

	listing, err := NewRepository(root).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(listing) != 2 {
		t.Errorf("expected symlinks to be skipped, got %v", listing.Paths())
	}
}

func TestScan_UnreadableDirectoryAborts(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := setupTestDrafts(t)
	locked := filepath.Join(root, "locked")
	if err := os.Mkdir(locked, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	writeFile(t, filepath.Join(locked, "c.md"), "c")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	listing, err := NewRepository(root).Scan()
	if !errors.Is(err, domain.ErrIO) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if listing != nil {
		t.Errorf("expected no partial results, got %v", listing.Paths())
	}
}

func TestScan_Idempotent(t *testing.T) {
	repo := NewRepository(setupTestDrafts(t))

	first, err := repo.Scan()
	if err != nil {
		t.Fatalf("first Scan failed: %v", err)
	}
	second, err := repo.Scan()
	if err != nil {
		t.Fatalf("second Scan failed: %v", err)
	}
	if !slices.Equal(first.Paths(), second.Paths()) {
		t.Errorf("scans differ: %v vs %v", first.Paths(), second.Paths())
	}
}

func TestPublish_MovesAndStampsDraft(t *testing.T) {
	root := setupTestDrafts(t)
	posts := filepath.Join(filepath.Dir(root), "_posts")
	repo := NewRepository(root)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	postPath, err := repo.Publish(filepath.Join(root, "a.md"), posts, day)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if want := filepath.Join(posts, "2024-05-01-a.md"); postPath != want {
		t.Errorf("expected post at %s, got %s", want, postPath)
	}

	content, err := os.ReadFile(postPath)
	if err != nil {
		t.Fatalf("failed to read post: %v", err)
	}
	if !strings.Contains(string(content), "date: 2024-05-01") {
		t.Errorf("expected stamped date, got %q", content)
	}

	if _, err := os.Stat(filepath.Join(root, "a.md")); !os.IsNotExist(err) {
		t.Error("expected draft to be removed")
	}
}

func TestPublish_Errors(t *testing.T) {
	root := setupTestDrafts(t)
	posts := filepath.Join(filepath.Dir(root), "_posts")
	outside := filepath.Join(filepath.Dir(root), "outside.md")
	writeFile(t, outside, "x")
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

	if err := os.MkdirAll(posts, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	writeFile(t, filepath.Join(posts, "2024-05-01-b.md"), "taken")

	tests := []struct {
		name    string
		path    string
		wantErr error
		errMsg  string
	}{
		{
			name:    "outside drafts",
			path:    outside,
			wantErr: domain.ErrCannotPublish,
			errMsg:  "not inside",
		},
		{
			name:    "drafts root itself",
			path:    root,
			wantErr: domain.ErrCannotPublish,
			errMsg:  "not inside",
		},
		{
			name:    "directory",
			path:    filepath.Join(root, "sub"),
			wantErr: domain.ErrCannotPublish,
			errMsg:  "not a regular file",
		},
		{
			name:    "missing draft",
			path:    filepath.Join(root, "missing.md"),
			wantErr: domain.ErrIO,
			errMsg:  "missing.md",
		},
		{
			name:    "destination exists",
			path:    filepath.Join(root, "sub", "b.md"),
			wantErr: domain.ErrCannotPublish,
			errMsg:  "already exists",
		},
	}

	repo := NewRepository(root)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Publish(tt.path, posts, day)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}

	// Failed publishes leave drafts in place
	if _, err := os.Stat(filepath.Join(root, "sub", "b.md")); err != nil {
		t.Errorf("expected draft to remain: %v", err)
	}
}

func TestScan_SymlinkedRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	target := setupTestDrafts(t)
	link := filepath.Join(t.TempDir(), "drafts-link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink failed: %v", err)
	}

	listing, err := NewRepository(link).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []string{
		filepath.Join(link, "a.md"),
		filepath.Join(link, "sub", "b.md"),
	}
	if got := listing.Paths(); !slices.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestPublish_KeepsExistingPost(t *testing.T) {
	root := setupTestDrafts(t)
	posts := filepath.Join(filepath.Dir(root), "_posts")
	if err := os.MkdirAll(posts, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	existing := filepath.Join(posts, "2024-05-01-a.md")
	writeFile(t, existing, "already published")

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	_, err := NewRepository(root).Publish(filepath.Join(root, "a.md"), posts, day)
	if !errors.Is(err, domain.ErrCannotPublish) {
		t.Fatalf("expected ErrCannotPublish, got %v", err)
	}

	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("failed to read post: %v", err)
	}
	if string(content) != "already published" {
		t.Errorf("existing post overwritten: %q", content)
	}
	if _, err := os.Stat(filepath.Join(root, "a.md")); err != nil {
		t.Errorf("expected draft to remain: %v", err)
	}
}
