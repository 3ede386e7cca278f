package config

import (
	"os"
	"time"
)

const (
	DefaultDraftsDir = "../_drafts"
	DefaultPostsDir  = "../_posts"
	DefaultInterval  = time.Second
)

// DraftsDir returns the drafts directory from DRAFTS_DIR,
// falling back to DefaultDraftsDir.
func DraftsDir() string {
	return envOr("DRAFTS_DIR", DefaultDraftsDir)
}

// PostsDir returns the posts directory from DRAFTS_POSTS_DIR,
// falling back to DefaultPostsDir.
func PostsDir() string {
	return envOr("DRAFTS_POSTS_DIR", DefaultPostsDir)
}

// Interval returns the watch refresh interval from DRAFTS_INTERVAL.
// Unparseable or non-positive values fall back to DefaultInterval.
func Interval() time.Duration {
	env := os.Getenv("DRAFTS_INTERVAL")
	if env == "" {
		return DefaultInterval
	}
	d, err := time.ParseDuration(env)
	if err != nil || d <= 0 {
		return DefaultInterval
	}
	return d
}

func envOr(key, fallback string) string {
	if env := os.Getenv(key); env != "" {
		return env
	}
	return fallback
}
