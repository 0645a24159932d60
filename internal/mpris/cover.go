//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// Album art file names, by stem then extension, in priority order.
var (
	coverStems      = []string{"cover", "folder", "album", "front"}
	coverExtensions = []string{".jpg", ".jpeg", ".png"}
)

// FindAlbumArt returns the album art file next to trackPath, or "" when
// there is none. Names are matched case-insensitively.
func FindAlbumArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files[strings.ToLower(e.Name())] = e.Name()
		}
	}
	for _, stem := range coverStems {
		for _, ext := range coverExtensions {
			if name, ok := files[stem+ext]; ok {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}
