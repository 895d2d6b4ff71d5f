package imagestore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStagePromoteLifecycle(t *testing.T) {
	s := newStore(t)

	ref, err := s.Stage([]byte("front-bytes"), "front.JPG")
	if err != nil {
		t.Fatal(err)
	}
	// staged, not yet served
	if _, err := os.Stat(s.ServedPath(ref)); !os.IsNotExist(err) {
		t.Fatalf("blob visible in served path before promote")
	}
	if _, err := os.Stat(filepath.Join(s.root, stagingDir, ref)); err != nil {
		t.Fatalf("staged blob missing: %v", err)
	}

	if err := s.Promote([]string{ref}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(s.ServedPath(ref))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "front-bytes" {
		t.Fatalf("served bytes differ: %q", data)
	}
	// extension is lowercased in the reference
	if filepath.Ext(ref) != ".jpg" {
		t.Fatalf("want .jpg ref, got %s", ref)
	}
}

func TestDiscardRemovesStaged(t *testing.T) {
	s := newStore(t)
	ref, err := s.Stage([]byte("x"), "a.png")
	if err != nil {
		t.Fatal(err)
	}
	s.Discard([]string{ref})
	if _, err := os.Stat(filepath.Join(s.root, stagingDir, ref)); !os.IsNotExist(err) {
		t.Fatal("staged blob survived discard")
	}
}

func TestStageRejectsUnknownExtension(t *testing.T) {
	s := newStore(t)
	if _, err := s.Stage([]byte("x"), "card.exe"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if AllowedExt("card.pdf") {
		t.Fatal("pdf should not be an allowed upload")
	}
	if !AllowedExt("card.WEBP") {
		t.Fatal("extension check should be case-insensitive")
	}
}

// References must stay unique even for many same-millisecond stores.
func TestConcurrentRefsUnique(t *testing.T) {
	s := newStore(t)

	const n = 200
	var mu sync.Mutex
	var wg sync.WaitGroup
	refs := make(map[string]bool, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref, err := s.Stage([]byte("img"), "c.png")
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if refs[ref] {
				t.Errorf("duplicate reference %s", ref)
			}
			refs[ref] = true
		}()
	}
	wg.Wait()

	if len(refs) != n {
		t.Fatalf("want %d unique refs, got %d", n, len(refs))
	}
}
