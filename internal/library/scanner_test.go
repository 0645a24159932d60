package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llehouerou/cuteplay/internal/tags"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("untagged"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func refresh(t *testing.T, lib *Library, sources ...string) *ScanStats {
	t.Helper()
	progress := make(chan ScanProgress)
	errCh := make(chan error, 1)
	go func() { errCh <- lib.Refresh(context.Background(), sources, progress) }()

	var stats *ScanStats
	for p := range progress {
		if p.Phase == PhaseDone {
			stats = p.Stats
		}
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if stats == nil {
		t.Fatal("no done progress received")
	}
	return stats
}

func TestRefresh_IndexesUpdatesAndRemoves(t *testing.T) {
	lib := New(setupTestDB(t))
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "one.mp3"))
	writeFile(t, filepath.Join(dir, "a", "two.flac"))
	writeFile(t, filepath.Join(dir, "b", "cover.jpg"))

	stats := refresh(t, lib, dir)
	if stats.Added != 2 || stats.Updated != 0 || stats.Removed != 0 {
		t.Errorf("first scan stats = %+v", stats)
	}
	if stats.Artists != 1 {
		t.Errorf("Artists = %d, want 1", stats.Artists)
	}

	artists, err := lib.Artists()
	if err != nil {
		t.Fatalf("Artists failed: %v", err)
	}
	if len(artists) != 1 || artists[0].Name != tags.UnknownArtist {
		t.Fatalf("artists = %+v", artists)
	}
	tracks, _ := lib.ArtistTracks(artists[0].ID)
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}

	// Unchanged files are skipped.
	stats = refresh(t, lib, dir)
	if stats.Added != 0 || stats.Updated != 0 || stats.Removed != 0 {
		t.Errorf("second scan stats = %+v", stats)
	}

	// A newer mtime re-reads the file.
	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "a", "one.mp3"), later, later); err != nil {
		t.Fatal(err)
	}
	stats = refresh(t, lib, dir)
	if stats.Updated != 1 {
		t.Errorf("Updated = %d, want 1", stats.Updated)
	}

	// Deleting every file prunes the artist too.
	if err := os.RemoveAll(filepath.Join(dir, "a")); err != nil {
		t.Fatal(err)
	}
	stats = refresh(t, lib, dir)
	if stats.Removed != 2 || stats.Artists != 0 {
		t.Errorf("cleanup stats = %+v", stats)
	}
	if n, _ := lib.ArtistCount(); n != 0 {
		t.Errorf("ArtistCount = %d, want 0", n)
	}
}

func TestRefresh_OnlyCleansScannedSources(t *testing.T) {
	lib := New(setupTestDB(t))
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(first, "one.mp3"))
	writeFile(t, filepath.Join(second, "two.mp3"))

	refresh(t, lib, first, second)
	stats := refresh(t, lib, first)
	if stats.Removed != 0 {
		t.Errorf("Removed = %d, want 0 for unscanned source", stats.Removed)
	}
	if n, _ := lib.TrackCount(); n != 2 {
		t.Errorf("TrackCount = %d, want 2", n)
	}
}

func TestRefresh_NilProgress(t *testing.T) {
	lib := New(setupTestDB(t))
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.wav"))

	if err := lib.Refresh(context.Background(), []string{dir}, nil); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if n, _ := lib.TrackCount(); n != 1 {
		t.Errorf("TrackCount = %d, want 1", n)
	}
}

func TestRefresh_Canceled(t *testing.T) {
	lib := New(setupTestDB(t))
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.mp3"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := lib.Refresh(ctx, []string{dir}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if n, _ := lib.TrackCount(); n != 0 {
		t.Errorf("TrackCount = %d, want 0", n)
	}
}

func TestUnderAny(t *testing.T) {
	sources := []string{"/music", "/other/lib"}
	tests := map[string]bool{
		"/music/a.mp3":        true,
		"/music/sub/b.mp3":    true,
		"/musicals/c.mp3":     false,
		"/other/lib/d.mp3":    true,
		"/other/library/e.mp": false,
		"/elsewhere/f.mp3":    false,
	}
	for path, want := range tests {
		if got := underAny(path, sources); got != want {
			t.Errorf("underAny(%q) = %v, want %v", path, got, want)
		}
	}
}
