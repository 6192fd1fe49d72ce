package audio

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{59.99, "0:59"},
		{60, "1:00"},
		{245.4, "4:05"},
		{3600, "60:00"},
		{7505, "125:05"},
		{7507, "125:07"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestSizeMB(t *testing.T) {
	tests := []struct {
		size int64
		want float64
	}{
		{0, 0},
		{4 * 1024 * 1024, 4},
		{1024 * 1024 / 2, 0.5},
		{5884901, 5.61},
		{1000000, 0.95},
	}

	for _, tt := range tests {
		if got := SizeMB(tt.size); got != tt.want {
			t.Errorf("SizeMB(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(240, 4.0); math.Abs(got-60.0) > 1e-9 {
		t.Errorf("Ratio(240, 4) = %v, want 60", got)
	}
	// Not rounded: 100/3 keeps full float64 precision.
	if got := Ratio(100, 3); got != 100.0/3.0 {
		t.Errorf("Ratio(100, 3) = %v, want %v", got, 100.0/3.0)
	}
}

func TestNewTrackRecord(t *testing.T) {
	tags := Tags{
		Title:       "Song",
		Artist:      "Artist",
		AlbumArtist: "Various",
		Album:       "Album",
		Year:        "2001",
		Track:       "7/10",
		Genre:       "Jazz",
	}
	props := Properties{Length: 240 * time.Second, BitrateKbps: 128}

	rec, err := NewTrackRecord("/music/song.mp3", tags, props, 4*1024*1024)
	if err != nil {
		t.Fatalf("NewTrackRecord() error = %v", err)
	}

	if rec.Length != "4:00" {
		t.Errorf("Length = %q, want %q", rec.Length, "4:00")
	}
	if rec.SizeMB != 4 {
		t.Errorf("SizeMB = %v, want 4", rec.SizeMB)
	}
	if math.Abs(rec.Ratio-60.0) > 1e-9 {
		t.Errorf("Ratio = %v, want 60", rec.Ratio)
	}
	if rec.TrackNumber != "7/10" || rec.AlbumArtist != "Various" || rec.Genre != "Jazz" {
		t.Errorf("tag fields not copied: %+v", rec)
	}
	if rec.BitrateKbps != 128 {
		t.Errorf("BitrateKbps = %d, want 128", rec.BitrateKbps)
	}
}

func TestNewTrackRecord_ZeroSize(t *testing.T) {
	_, err := NewTrackRecord("/music/tiny.mp3", Tags{}, Properties{Length: time.Second}, 1000)
	if !errors.Is(err, ErrZeroSize) {
		t.Fatalf("NewTrackRecord() error = %v, want ErrZeroSize", err)
	}
}
