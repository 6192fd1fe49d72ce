package audio

import (
	"strings"
	"testing"

	"github.com/handiism/mp3tools/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist(createTestRecords())

	if strings.Contains(content, "#EXTM3U") {
		t.Error("plain M3U should not contain #EXTM3U")
	}
	if !strings.Contains(content, "/music/Artist/01 One.mp3\n") {
		t.Error("M3U should contain absolute track path")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist(createTestRecords())

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:180,Artist - One\n") {
		t.Errorf("Extended M3U missing EXTINF for first record:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:200,02 Untitled\n") {
		t.Errorf("Extended M3U should fall back to the file name:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist(createTestRecords())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=/music/Artist/01 One.mp3") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries=2")
	}
}

func TestPlaylistCreator_Empty(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS, false).CreatePlaylist(nil)
	if !strings.Contains(content, "NumberOfEntries=0") {
		t.Errorf("empty PLS = %q", content)
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    PlaylistFormat
		wantExt string
	}{
		{"m3u", FormatM3U, ".m3u"},
		{"PLS", FormatPLS, ".pls"},
		{"", FormatM3U, ".m3u"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePlaylistFormat(tt.in)
			if got != tt.want {
				t.Errorf("ParsePlaylistFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got.Extension(), tt.wantExt)
			}
		})
	}
}

func createTestRecords() []*model.TrackRecord {
	return []*model.TrackRecord{
		{Title: "One", Artist: "Artist", DurationSeconds: 180.7, Path: "/music/Artist/01 One.mp3"},
		{DurationSeconds: 200, Path: "/music/Artist/02 Untitled.mp3"},
	}
}
