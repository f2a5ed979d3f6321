// Package fs provides file-based capsule storage: serialized capsules
// laid out under a base directory mirroring their URL paths, plus the
// JSON discovery feed.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mako"
)

// CapsuleExt is the file extension for stored capsules.
const CapsuleExt = ".mako.md"

// URLToPath converts a capsule's canonical URL to a relative file path.
// Example: https://example.com/products/widget → products/widget.mako.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash → index file in that directory.
	if path == "" || path == "/" {
		return "index" + CapsuleExt, nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index" + CapsuleExt, nil
	}

	return path + CapsuleExt, nil
}

// Ensure Store implements mako.CapsuleStore at compile time.
var _ mako.CapsuleStore = (*Store)(nil)

// Store writes serialized capsules to a directory tree.
type Store struct {
	baseDir string
}

// NewStore creates a new Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// SaveCapsule writes the serialized capsule to the path derived from
// its canonical URL, creating parent directories as needed.
func (s *Store) SaveCapsule(ctx context.Context, c *mako.Capsule) error {
	if c == nil {
		return mako.Errorf(mako.EINVALID, "capsule required")
	}
	if c.Canonical == "" {
		return mako.Errorf(mako.EINVALID, "capsule canonical URL required")
	}

	relPath, err := URLToPath(c.Canonical)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(c.Serialize()), 0644)
}

// WriteFeed writes the JSON discovery feed for the given records to
// baseDir/mako.json.
func (s *Store) WriteFeed(records []*mako.CapsuleRecord) error {
	data, err := mako.BuildFeed(records)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.baseDir, "mako.json"), data, 0644)
}
