package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/handiism/mp3tools/internal/model"
)

// bytesPerMB is a binary megabyte.
const bytesPerMB = 1024 * 1024

// ErrZeroSize is returned when a file rounds to 0.00 MB, leaving the
// length/size ratio undefined.
var ErrZeroSize = errors.New("file size rounds to 0 MB")

// FormatDuration formats seconds as minutes:seconds. Minutes are not
// wrapped into hours and seconds are truncated.
//
//	FormatDuration(59)   // "0:59"
//	FormatDuration(7505) // "125:05"
func FormatDuration(seconds float64) string {
	minutes := int(seconds / 60)
	secs := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// SizeMB converts a byte count to binary megabytes rounded to 2 decimals.
func SizeMB(size int64) float64 {
	return math.Round(float64(size)/bytesPerMB*100) / 100
}

// Ratio divides the duration in seconds by the size in MB. The result is a
// float64 and is not rounded.
func Ratio(seconds, sizeMB float64) float64 {
	return seconds / sizeMB
}

// NewTrackRecord builds an inventory record from the pieces read off disk.
func NewTrackRecord(path string, tags Tags, props Properties, size int64) (*model.TrackRecord, error) {
	sizeMB := SizeMB(size)
	if sizeMB == 0 {
		return nil, fmt.Errorf("%w (%d bytes)", ErrZeroSize, size)
	}

	seconds := props.Length.Seconds()
	return &model.TrackRecord{
		Title:           tags.Title,
		Artist:          tags.Artist,
		AlbumArtist:     tags.AlbumArtist,
		Album:           tags.Album,
		Year:            tags.Year,
		TrackNumber:     tags.Track,
		Genre:           tags.Genre,
		DurationSeconds: seconds,
		Length:          FormatDuration(seconds),
		SizeBytes:       size,
		SizeMB:          sizeMB,
		BitrateKbps:     props.BitrateKbps,
		Path:            path,
		Ratio:           Ratio(seconds, sizeMB),
	}, nil
}

// ReadTrack extracts the full inventory record for the MP3 file at path.
//
// A missing ID3 tag is an error here: the inventory only lists tagged
// files. The returned error does not repeat the path.
func ReadTrack(path string) (*model.TrackRecord, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	res := ReadTags(abs)
	switch res.Status {
	case TagNotPresent:
		return nil, ErrNoTag
	case TagReadError:
		return nil, res.Err
	}

	props, err := ReadProperties(abs)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	return NewTrackRecord(abs, res.Tags, props, info.Size())
}
