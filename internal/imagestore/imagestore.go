package imagestore

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store keeps uploaded card photos under a single media root. Blobs are
// written to a staging directory first and renamed into the served directory
// only after the owning card record has been persisted, so the served path
// never contains blobs of a failed submission.
type Store struct {
	root string
}

const (
	stagingDir = "staging"
	servedDir  = "cards"
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

func New(root string) (*Store, error) {
	for _, d := range []string{stagingDir, servedDir} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return nil, fmt.Errorf("imagestore: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// AllowedExt reports whether the original filename carries a supported image
// extension.
func AllowedExt(name string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(name))]
}

// newRef builds a reference unlikely to collide even for same-millisecond
// submissions: <unix-millis>-<random 0..1e9><ext>. Collision avoidance, not a
// cryptographic guarantee.
func newRef(ext string) string {
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

// Stage writes the blob under the staging directory and returns its reference.
func (s *Store) Stage(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExts[ext] {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
	ref := newRef(ext)
	if err := os.WriteFile(filepath.Join(s.root, stagingDir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("stage %s: %w", ref, err)
	}
	return ref, nil
}

// Promote renames staged blobs into the served directory.
func (s *Store) Promote(refs []string) error {
	for _, ref := range refs {
		from := filepath.Join(s.root, stagingDir, ref)
		to := filepath.Join(s.root, servedDir, ref)
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("promote %s: %w", ref, err)
		}
	}
	return nil
}

// Discard removes staged blobs of an aborted submission. Best effort.
func (s *Store) Discard(refs []string) {
	for _, ref := range refs {
		_ = os.Remove(filepath.Join(s.root, stagingDir, ref))
	}
}

// ServedPath returns the filesystem path a promoted reference resolves to.
func (s *Store) ServedPath(ref string) string {
	return filepath.Join(s.root, servedDir, ref)
}

// URLPath returns the stable request path a promoted reference is served at.
func URLPath(ref string) string { return "/media/" + servedDir + "/" + ref }
