package auth

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestSessionRegistry_InsertLookupRemove(t *testing.T) {
	r := NewSessionRegistry()

	if _, ok := r.Lookup("t1"); ok {
		t.Fatal("Lookup() on empty registry succeeded")
	}

	r.Insert("t1", "user-1")
	identity, ok := r.Lookup("t1")
	if !ok || identity != "user-1" {
		t.Fatalf("Lookup() = %q, %v; want user-1, true", identity, ok)
	}

	r.Insert("t1", "user-2")
	if identity, _ := r.Lookup("t1"); identity != "user-2" {
		t.Errorf("Insert() did not upsert, got %q", identity)
	}

	if !r.Remove("t1") {
		t.Error("Remove() = false, want true")
	}
	if r.Remove("t1") {
		t.Error("second Remove() = true, want false")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestSessionRegistry_Sweep(t *testing.T) {
	r := NewSessionRegistry()
	r.Insert("live-1", "a")
	r.Insert("dead-1", "b")
	r.Insert("dead-2", "c")

	removed := r.Sweep(func(token string) bool {
		return strings.HasPrefix(token, "live")
	})
	if removed != 2 {
		t.Errorf("Sweep() = %d, want 2", removed)
	}
	if _, ok := r.Lookup("live-1"); !ok {
		t.Error("live entry was swept")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if r.Sweep(func(string) bool { return true }) != 0 {
		t.Error("Sweep() removed entries that should be kept")
	}
}

func TestSessionRegistry_ConcurrentAccess(t *testing.T) {
	const workers = 32
	const perWorker = 200

	r := NewSessionRegistry()
	var g errgroup.Group

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				token := fmt.Sprintf("w%d-t%d", w, i)
				identity := fmt.Sprintf("user-%d", w)
				r.Insert(token, identity)
				got, ok := r.Lookup(token)
				if !ok || got != identity {
					return fmt.Errorf("lookup %s = %q, %v", token, got, ok)
				}
				// drop every even token
				if i%2 == 0 && !r.Remove(token) {
					return fmt.Errorf("remove %s reported missing", token)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if want := workers * perWorker / 2; r.Len() != want {
		t.Errorf("Len() = %d, want %d", r.Len(), want)
	}
}
