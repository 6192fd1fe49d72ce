package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/mp3tools/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// ParsePlaylistFormat maps a config value ("m3u", "pls") to a format.
// Unknown values select M3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	if strings.EqualFold(s, "pls") {
		return FormatPLS
	}
	return FormatM3U
}

// Extension returns the file extension for the format, including the dot.
func (f PlaylistFormat) Extension() string {
	if f == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// PlaylistCreator renders an inventory as a playlist.
//
// Entries use the absolute path of each file, so the playlist works from
// any directory.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(records)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:245,Artist - Song Title
//	// /music/Artist/Album/01 Song Title.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only affects M3U output.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Format returns the playlist format.
func (p *PlaylistCreator) Format() PlaylistFormat {
	return p.format
}

// CreatePlaylist generates playlist content for the records, in order.
func (p *PlaylistCreator) CreatePlaylist(records []*model.TrackRecord) string {
	if p.format == FormatPLS {
		return p.createPLS(records)
	}
	return p.createM3U(records)
}

func (p *PlaylistCreator) createM3U(records []*model.TrackRecord) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, rec := range records {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", int(rec.DurationSeconds), displayName(rec)))
		}
		sb.WriteString(rec.Path + "\n")
	}

	return sb.String()
}

func (p *PlaylistCreator) createPLS(records []*model.TrackRecord) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, rec := range records {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, rec.Path))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, displayName(rec)))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, int(rec.DurationSeconds)))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(records)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// displayName is "Artist - Title", falling back to the file name when the
// title is empty.
func displayName(rec *model.TrackRecord) string {
	title := rec.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(rec.Path), filepath.Ext(rec.Path))
	}
	if rec.Artist == "" {
		return title
	}
	return rec.Artist + " - " + title
}
