package model

// TrackRecord holds the inventory data extracted from a single MP3 file.
//
// TrackRecord combines three sources:
//   - ID3 text frames (Title, Artist, AlbumArtist, Album, Year, TrackNumber, Genre)
//   - Audio properties (DurationSeconds, Length, BitrateKbps)
//   - File system data (Path, SizeMB)
//
// Tag fields are empty strings when the frame is absent. Ratio is derived
// from DurationSeconds and SizeMB and is never rounded.
//
// Example:
//
//	rec, err := audio.ReadTrack("/music/Artist/01 Song.mp3")
//	// rec.Length = "4:05", rec.SizeMB = 5.61, rec.BitrateKbps = 192
type TrackRecord struct {
	// Title is the TIT2 frame.
	Title string

	// Artist is the TPE1 frame (shown as "Contributing Artists").
	Artist string

	// AlbumArtist is the TPE2 frame.
	AlbumArtist string

	// Album is the TALB frame.
	Album string

	// Year is the recording date (TDRC) or year (TYER) frame, verbatim.
	Year string

	// TrackNumber is the TRCK frame, verbatim (e.g. "3" or "3/12").
	TrackNumber string

	// Genre is the TCON frame.
	Genre string

	// DurationSeconds is the raw audio length in seconds.
	DurationSeconds float64

	// Length is DurationSeconds formatted as minutes:seconds.
	Length string

	// SizeBytes is the file size on disk.
	SizeBytes int64

	// SizeMB is SizeBytes in binary megabytes, rounded to 2 decimals.
	SizeMB float64

	// BitrateKbps is the audio bitrate rounded to whole kbps.
	BitrateKbps int

	// Path is the absolute path of the file.
	Path string

	// Ratio is DurationSeconds divided by SizeMB.
	Ratio float64
}

// Values returns the record as a spreadsheet row, ordered like Columns.
func (r *TrackRecord) Values() []any {
	return []any{
		r.Title,
		r.Artist,
		r.AlbumArtist,
		r.Album,
		r.Year,
		r.TrackNumber,
		r.Genre,
		r.Length,
		r.SizeMB,
		r.BitrateKbps,
		r.Path,
		r.Ratio,
	}
}

// Column headers of the inventory table.
const (
	ColumnTitle       = "Title"
	ColumnArtist      = "Contributing Artists"
	ColumnAlbumArtist = "Album Artist"
	ColumnAlbum       = "Album"
	ColumnYear        = "Year"
	ColumnTrackNumber = "#"
	ColumnGenre       = "Genre"
	ColumnLength      = "Length"
	ColumnSizeMB      = "MB"
	ColumnBitrate     = "kbps"
	ColumnPath        = "Full Path"
	ColumnRatio       = "Length/Size Ratio"
)

// Columns returns the inventory headers in output order.
func Columns() []string {
	return []string{
		ColumnTitle,
		ColumnArtist,
		ColumnAlbumArtist,
		ColumnAlbum,
		ColumnYear,
		ColumnTrackNumber,
		ColumnGenre,
		ColumnLength,
		ColumnSizeMB,
		ColumnBitrate,
		ColumnPath,
		ColumnRatio,
	}
}
