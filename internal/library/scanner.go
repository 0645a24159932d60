package library

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	dbutil "github.com/llehouerou/cuteplay/internal/db"
	"github.com/llehouerou/cuteplay/internal/tags"
)

const numWorkers = 8

// Scan phases reported through ScanProgress.
const (
	PhaseScanning   = "scanning"
	PhaseProcessing = "processing"
	PhaseCleaning   = "cleaning"
	PhaseDone       = "done"
)

// ScanProgress reports the progress of a library scan.
type ScanProgress struct {
	Phase   string
	Current int
	Total   int
	Stats   *ScanStats // only set when Phase == PhaseDone
}

// ScanStats summarizes a completed scan.
type ScanStats struct {
	Added   int
	Updated int
	Removed int
	Artists int
}

// fileInfo is a discovered music file.
type fileInfo struct {
	path  string
	mtime int64
}

// trackResult is a file whose tags have been read.
type trackResult struct {
	fileInfo
	tag   *tags.Tag
	isNew bool
}

// Refresh performs an incremental scan of the given source directories.
// Files whose mtime did not change are skipped, files that disappeared are
// removed, and artists left without tracks are pruned.
// The progress channel is closed when Refresh returns; a nil channel is allowed.
func (l *Library) Refresh(ctx context.Context, sources []string, progress chan<- ScanProgress) error {
	if progress != nil {
		defer close(progress)
	}
	send := func(p ScanProgress) {
		if progress == nil {
			return
		}
		select {
		case progress <- p:
		case <-ctx.Done():
		}
	}

	send(ScanProgress{Phase: PhaseScanning})
	files, err := discoverFiles(ctx, sources, send)
	if err != nil {
		return err
	}

	existing, err := l.existingTracks(sources)
	if err != nil {
		return fmt.Errorf("load existing tracks: %w", err)
	}

	discovered := make(map[string]struct{}, len(files))
	toProcess := make([]fileInfo, 0, len(files))
	for _, f := range files {
		discovered[f.path] = struct{}{}
		if mtime, ok := existing[f.path]; ok && mtime == f.mtime {
			continue
		}
		toProcess = append(toProcess, f)
	}

	results, err := processFiles(ctx, toProcess, existing, send)
	if err != nil {
		return err
	}

	stats := &ScanStats{}
	err = dbutil.WithTx(ctx, l.db, func(tx *sql.Tx) error {
		for _, r := range results {
			if err := upsertTrack(tx, r); err != nil {
				return fmt.Errorf("index %s: %w", r.path, err)
			}
			if r.isNew {
				stats.Added++
			} else {
				stats.Updated++
			}
		}

		send(ScanProgress{Phase: PhaseCleaning})
		for path := range existing {
			if _, ok := discovered[path]; ok {
				continue
			}
			if _, err := tx.Exec(`DELETE FROM library_tracks WHERE path = ?`, path); err != nil {
				return err
			}
			stats.Removed++
		}
		_, err := tx.Exec(`
			DELETE FROM library_artists
			WHERE id NOT IN (SELECT DISTINCT artist_id FROM library_tracks)
		`)
		return err
	})
	if err != nil {
		return err
	}

	if stats.Artists, err = l.ArtistCount(); err != nil {
		return err
	}
	send(ScanProgress{Phase: PhaseDone, Current: len(results), Total: len(results), Stats: stats})
	return nil
}

// discoverFiles walks the sources and returns every music file found.
// Unreadable entries are skipped.
func discoverFiles(ctx context.Context, sources []string, send func(ScanProgress)) ([]fileInfo, error) {
	var files []fileInfo
	for _, src := range sources {
		err := filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil || d.IsDir() || !tags.IsMusicFile(path) {
				return nil //nolint:nilerr // keep scanning other paths
			}
			info, err := d.Info()
			if err != nil {
				return nil //nolint:nilerr // keep scanning other files
			}
			files = append(files, fileInfo{path: path, mtime: info.ModTime().Unix()})
			if len(files)%100 == 0 {
				send(ScanProgress{Phase: PhaseScanning, Current: len(files)})
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// processFiles reads tags in parallel.
func processFiles(
	ctx context.Context,
	files []fileInfo,
	existing map[string]int64,
	send func(ScanProgress),
) ([]trackResult, error) {
	total := len(files)
	if total == 0 {
		return nil, nil
	}
	var processed atomic.Int64

	workCh := make(chan fileInfo)
	resultCh := make(chan trackResult, numWorkers)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for f := range workCh {
				t, err := tags.Read(f.path)
				processed.Add(1)
				if err != nil {
					continue
				}
				_, known := existing[f.path]
				resultCh <- trackResult{fileInfo: f, tag: t, isNew: !known}
			}
		})
	}

	go func() {
		defer close(workCh)
		for _, f := range files {
			select {
			case workCh <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				send(ScanProgress{Phase: PhaseProcessing, Current: int(processed.Load()), Total: total})
			case <-done:
				return
			}
		}
	}()

	results := make([]trackResult, 0, total)
	for r := range resultCh {
		results = append(results, r)
	}
	close(done)
	<-stopped

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	send(ScanProgress{Phase: PhaseProcessing, Current: total, Total: total})
	return results, nil
}

// existingTracks returns path -> mtime for indexed tracks under sources.
func (l *Library) existingTracks(sources []string) (map[string]int64, error) {
	rows, err := l.db.Query(`SELECT path, mtime FROM library_tracks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := make(map[string]int64)
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			return nil, err
		}
		if underAny(path, sources) {
			tracks[path] = mtime
		}
	}
	return tracks, rows.Err()
}

func underAny(path string, sources []string) bool {
	for _, src := range sources {
		rel, err := filepath.Rel(src, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// ensureArtist returns the ID of the named artist, creating it if needed.
// Names are matched ignoring case.
func ensureArtist(tx *sql.Tx, name string) (int64, error) {
	if _, err := tx.Exec(`INSERT INTO library_artists (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return 0, err
	}
	var id int64
	err := tx.QueryRow(`SELECT id FROM library_artists WHERE name = ?`, name).Scan(&id)
	return id, err
}

func upsertTrack(tx *sql.Tx, r trackResult) error {
	artistID, err := ensureArtist(tx, r.tag.LibraryArtist())
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	_, err = tx.Exec(`
		INSERT INTO library_tracks (artist_id, path, mtime, artist, album, title,
		                            disc_number, track_number, year, genre, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			artist_id = excluded.artist_id,
			mtime = excluded.mtime,
			artist = excluded.artist,
			album = excluded.album,
			title = excluded.title,
			disc_number = excluded.disc_number,
			track_number = excluded.track_number,
			year = excluded.year,
			genre = excluded.genre,
			updated_at = excluded.updated_at
	`, artistID, r.path, r.mtime, r.tag.Artist, r.tag.Album, r.tag.Title,
		dbutil.NullIfZero(r.tag.DiscNumber), dbutil.NullIfZero(r.tag.TrackNumber),
		dbutil.NullIfZero(r.tag.Year), sql.NullString{String: r.tag.Genre, Valid: r.tag.Genre != ""},
		r.mtime, now)
	return err
}
