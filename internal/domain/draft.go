package domain

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the date format used in front matter and post file names
const DateLayout = "2006-01-02"

// Draft is a regular file discovered under the drafts directory
type Draft struct {
	Path string // as yielded by the walk, prefixed by the drafts root
}

// Listing is an ordered set of drafts in walk order
type Listing []Draft

// Header returns the count line printed above the entries
func (l Listing) Header() string {
	return fmt.Sprintf("%d files found", len(l))
}

// Line returns the rendered line for the entry at index i
func (l Listing) Line(i int) string {
	return fmt.Sprintf("%d: %s", i, l[i].Path)
}

// Paths returns the draft paths in listing order
func (l Listing) Paths() []string {
	paths := make([]string, len(l))
	for i, d := range l {
		paths[i] = d.Path
	}
	return paths
}

// WriteTo writes the header followed by one line per entry.
func (l Listing) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintln(w, l.Header())
	total += int64(n)
	if err != nil {
		return total, err
	}
	for i := range l {
		n, err = fmt.Fprintln(w, l.Line(i))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the listing as text
func (l Listing) String() string {
	var b strings.Builder
	l.WriteTo(&b)
	return b.String()
}

var frontMatterDate = regexp.MustCompile(`date: \d{4}-\d{2}-\d{2}`)

// StampDate rewrites every "date: YYYY-MM-DD" occurrence to the given day
func StampDate(content []byte, day time.Time) []byte {
	return frontMatterDate.ReplaceAll(content, []byte("date: "+day.Format(DateLayout)))
}

// PostName returns the published file name for a draft, e.g. 2024-05-01-hello.md
func PostName(draftName string, day time.Time) string {
	return day.Format(DateLayout) + "-" + draftName
}

// ParseDate parses a YYYY-MM-DD date in local time
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}
