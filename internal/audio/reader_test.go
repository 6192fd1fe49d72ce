package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/handiism/mp3tools/internal/testsupport"
)

func TestReadTags_Found(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	testsupport.WriteMP3(t, path, 10, &testsupport.Tag{
		Title:       "Song",
		Artist:      "Artist",
		AlbumArtist: "Album Artist",
		Album:       "Album",
		Year:        "1999",
		Track:       "3/12",
		Genre:       "Rock",
		Comments:    []string{"first", "second"},
	})

	res := ReadTags(path)
	if res.Status != TagFound {
		t.Fatalf("Status = %v (%v), want found", res.Status, res.Err)
	}

	got := res.Tags
	if got.Title != "Song" || got.Artist != "Artist" || got.AlbumArtist != "Album Artist" {
		t.Errorf("unexpected names: %+v", got)
	}
	if got.Album != "Album" || got.Year != "1999" || got.Track != "3/12" || got.Genre != "Rock" {
		t.Errorf("unexpected fields: %+v", got)
	}
	if len(got.Comments) != 2 || got.Comments[0].Text != "first" || got.Comments[1].Text != "second" {
		t.Errorf("Comments = %+v", got.Comments)
	}
}

func TestReadTags_V23Year(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	testsupport.WriteMP3(t, path, 10, &testsupport.Tag{Year: "1987", Version: 3})

	res := ReadTags(path)
	if res.Status != TagFound {
		t.Fatalf("Status = %v (%v), want found", res.Status, res.Err)
	}
	if res.Tags.Year != "1987" {
		t.Errorf("Year = %q, want %q", res.Tags.Year, "1987")
	}
	if res.Tags.Title != "" || res.Tags.Comments != nil {
		t.Errorf("absent frames should be empty: %+v", res.Tags)
	}
}

func TestReadTags_NotPresent(t *testing.T) {
	dir := t.TempDir()

	untagged := filepath.Join(dir, "untagged.mp3")
	testsupport.WriteMP3(t, untagged, 10, nil)

	short := filepath.Join(dir, "short.mp3")
	if err := os.WriteFile(short, []byte("I"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{untagged, short} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			res := ReadTags(path)
			if res.Status != TagNotPresent {
				t.Fatalf("Status = %v (%v), want not present", res.Status, res.Err)
			}
			if res.Err != nil {
				t.Errorf("Err = %v, want nil", res.Err)
			}
		})
	}
}

func TestReadTags_ID3v1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v1.mp3")
	testsupport.WriteMP3(t, path, 10, nil)
	testsupport.AppendID3v1(t, path, testsupport.V1Tag{
		Title:  "Café",
		Artist: "Artist",
		Album:  "Album",
		Year:   "1994",
		Track:  7,
		Genre:  17,
	})

	res := ReadTags(path)
	if res.Status != TagFound {
		t.Fatalf("Status = %v (%v), want found", res.Status, res.Err)
	}

	want := Tags{
		Title:  "Café",
		Artist: "Artist",
		Album:  "Album",
		Year:   "1994",
		Track:  "7",
		Genre:  "Rock",
	}
	got := res.Tags
	if got.Title != want.Title || got.Artist != want.Artist || got.Album != want.Album ||
		got.Year != want.Year || got.Track != want.Track || got.Genre != want.Genre {
		t.Errorf("Tags = %+v, want %+v", got, want)
	}
	if got.Comments != nil {
		t.Errorf("Comments = %+v, want none", got.Comments)
	}
}

func TestV1Genre(t *testing.T) {
	tests := []struct {
		index byte
		want  string
	}{
		{0, "Blues"},
		{17, "Rock"},
		{79, "Hard Rock"},
		{125, "Dance Hall"},
		{126, ""},
		{255, ""},
	}
	for _, tt := range tests {
		if got := v1Genre(tt.index); got != tt.want {
			t.Errorf("v1Genre(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestReadTags_ID3v22Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v22.mp3")
	testsupport.WriteMP3(t, path, 10, nil)
	frames := testsupport.ReadFile(t, path)

	header := []byte{'I', 'D', '3', 2, 0, 0, 0, 0, 0, 10}
	data := append(append(header, make([]byte, 10)...), frames...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	res := ReadTags(path)
	if res.Status != TagReadError {
		t.Fatalf("Status = %v, want read error", res.Status)
	}
	if !errors.Is(res.Err, id3v2.ErrUnsupportedVersion) {
		t.Errorf("Err = %v, want id3v2.ErrUnsupportedVersion", res.Err)
	}
}

func TestReadTags_ReadError(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.mp3")},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ReadTags(tt.path)
			if res.Status != TagReadError {
				t.Fatalf("Status = %v, want read error", res.Status)
			}
			if res.Err == nil {
				t.Error("Err should carry the cause")
			}
		})
	}
}

func TestFirstValue(t *testing.T) {
	if got := firstValue("Rock\x00Pop"); got != "Rock" {
		t.Errorf("firstValue() = %q, want %q", got, "Rock")
	}
	if got := firstValue("Rock"); got != "Rock" {
		t.Errorf("firstValue() = %q, want %q", got, "Rock")
	}
}

func TestReadTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	testsupport.WriteMP3(t, path, 100, &testsupport.Tag{Title: "Song", Artist: "Artist"})

	rec, err := ReadTrack(path)
	if err != nil {
		t.Fatalf("ReadTrack() error = %v", err)
	}

	if rec.Title != "Song" || rec.Artist != "Artist" {
		t.Errorf("tags = %q/%q", rec.Title, rec.Artist)
	}
	if rec.BitrateKbps != testsupport.FixtureBitrate {
		t.Errorf("BitrateKbps = %d, want %d", rec.BitrateKbps, testsupport.FixtureBitrate)
	}
	// 100 frames of 417 bytes at 128 kbps is about 2.6 seconds.
	if rec.DurationSeconds < 2.4 || rec.DurationSeconds > 2.8 {
		t.Errorf("DurationSeconds = %v, want about 2.6", rec.DurationSeconds)
	}
	if rec.Length != "0:02" {
		t.Errorf("Length = %q, want %q", rec.Length, "0:02")
	}
	if rec.SizeMB != 0.04 {
		t.Errorf("SizeMB = %v, want 0.04", rec.SizeMB)
	}
	if math.Abs(rec.Ratio-rec.DurationSeconds/rec.SizeMB) > 1e-9 {
		t.Errorf("Ratio = %v, want %v", rec.Ratio, rec.DurationSeconds/rec.SizeMB)
	}
	if !filepath.IsAbs(rec.Path) {
		t.Errorf("Path %q is not absolute", rec.Path)
	}
}

func TestReadTrack_NoTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untagged.mp3")
	testsupport.WriteMP3(t, path, 100, nil)

	if _, err := ReadTrack(path); !errors.Is(err, ErrNoTag) {
		t.Fatalf("ReadTrack() error = %v, want ErrNoTag", err)
	}
}

func TestReadTrack_ID3v1Only(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v1.mp3")
	testsupport.WriteMP3(t, path, 100, nil)
	testsupport.AppendID3v1(t, path, testsupport.V1Tag{Title: "Song", Artist: "Artist", Genre: 255})

	rec, err := ReadTrack(path)
	if err != nil {
		t.Fatalf("ReadTrack() error = %v", err)
	}
	if rec.Title != "Song" || rec.Artist != "Artist" || rec.Genre != "" {
		t.Errorf("record = %+v", rec)
	}
}

func TestReadTrack_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.mp3")
	testsupport.WriteMP3(t, path, 0, &testsupport.Tag{Title: "Only a tag"})
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte("this is not mpeg audio")); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := ReadTrack(path); err == nil {
		t.Fatal("ReadTrack() should fail on a file without audio frames")
	}
}
