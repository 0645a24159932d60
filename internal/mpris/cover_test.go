//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindAlbumArt(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"none", []string{"01.mp3"}, ""},
		{"cover", []string{"01.mp3", "cover.jpg"}, "cover.jpg"},
		{"stem priority", []string{"folder.jpg", "cover.png"}, "cover.png"},
		{"extension priority", []string{"front.png", "front.jpg"}, "front.jpg"},
		{"case insensitive", []string{"Folder.JPG"}, "Folder.JPG"},
		{"unrelated image", []string{"scan.jpg"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			got := FindAlbumArt(filepath.Join(dir, "01.mp3"))

			want := ""
			if tt.want != "" {
				want = filepath.Join(dir, tt.want)
			}
			if got != want {
				t.Errorf("FindAlbumArt() = %q, want %q", got, want)
			}
		})
	}
}

func TestFindAlbumArt_MissingDir(t *testing.T) {
	if got := FindAlbumArt("/nonexistent/dir/01.mp3"); got != "" {
		t.Errorf("FindAlbumArt() = %q, want empty", got)
	}
}

func TestFindAlbumArt_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "cover.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := FindAlbumArt(filepath.Join(dir, "01.mp3")); got != "" {
		t.Errorf("FindAlbumArt() = %q, want empty", got)
	}
}
