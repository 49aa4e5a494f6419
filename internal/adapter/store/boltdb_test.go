package store

import (
	"path/filepath"
	"testing"

	"molscene/internal/domain"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPutGetRoundTrip(t *testing.T) {
	st := newTestStore(t)

	scene := &domain.Scene{
		Name:      "water",
		Materials: []domain.Material{{Name: "element_O", Color: domain.Color{R: 1, G: 0.016}}},
		Shapes:    []domain.Shape{{Kind: "sphere", Radius: 0.38, Material: "element_O"}},
	}
	if err := st.Put("/mol/water.sdf", 1234, scene); err != nil {
		t.Fatal(err)
	}

	got, modTime, ok, err := st.Get("/mol/water.sdf")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if modTime != 1234 {
		t.Errorf("expected modTime 1234, got %d", modTime)
	}
	if got.Name != "water" || len(got.Shapes) != 1 || len(got.Materials) != 1 {
		t.Errorf("scene did not round trip: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	st := newTestStore(t)

	_, _, ok, err := st.Get("/mol/absent.sdf")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected cache miss for unknown path")
	}
}

func TestDelete(t *testing.T) {
	st := newTestStore(t)

	if err := st.Put("/mol/x.sdf", 1, &domain.Scene{Name: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete("/mol/x.sdf"); err != nil {
		t.Fatal(err)
	}

	_, _, ok, err := st.Get("/mol/x.sdf")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected entry gone after delete")
	}
}
