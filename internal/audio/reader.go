package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bogem/id3v2"
)

// id3Magic opens every ID3v2 tag.
var id3Magic = []byte("ID3")

// ErrNoTag is returned by ReadTrack for files without an ID3 tag.
var ErrNoTag = errors.New("no ID3 tag found")

// TagStatus tells whether ReadTags found a tag.
type TagStatus int

const (
	// TagFound means the file carries an ID3v2 or ID3v1 tag and Tags is
	// populated.
	TagFound TagStatus = iota

	// TagNotPresent means the file has neither an ID3v2 header nor an
	// ID3v1 trailer. This is not an error.
	TagNotPresent

	// TagReadError means the file or its tag could not be read; see Err.
	TagReadError
)

// String returns the status name.
func (s TagStatus) String() string {
	switch s {
	case TagFound:
		return "found"
	case TagNotPresent:
		return "not present"
	case TagReadError:
		return "read error"
	default:
		return "unknown"
	}
}

// Comment is one COMM frame.
type Comment struct {
	Language    string
	Description string
	Text        string
}

// Tags holds the ID3 fields used by mp3tools. Absent frames are empty.
type Tags struct {
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Year        string
	Track       string
	Genre       string

	// Comments are all COMM frames in tag order. Always empty for an
	// ID3v1 tag, whose comment field cannot be rewritten.
	Comments []Comment
}

// TagResult is the outcome of ReadTags.
type TagResult struct {
	Status TagStatus
	Tags   Tags
	Err    error
}

// ReadTags reads the ID3v2 tag at the start of the file at path, falling
// back to an ID3v1 trailer when there is none.
//
// The file is opened once and always closed before returning. A file with
// neither yields TagNotPresent; open, read and parse failures yield
// TagReadError with the cause in Err. ID3v2.2 and older tags are reported
// as errors wrapping id3v2.ErrUnsupportedVersion.
//
// Example:
//
//	res := audio.ReadTags(path)
//	switch res.Status {
//	case audio.TagFound:
//	    fmt.Println(res.Tags.Title)
//	case audio.TagNotPresent:
//	    // nothing to do
//	case audio.TagReadError:
//	    return res.Err
//	}
func ReadTags(path string) TagResult {
	f, err := os.Open(path)
	if err != nil {
		return TagResult{Status: TagReadError, Err: err}
	}
	defer f.Close()

	magic := make([]byte, len(id3Magic))
	if _, err := io.ReadFull(f, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return TagResult{Status: TagNotPresent}
		}
		return TagResult{Status: TagReadError, Err: err}
	}
	if !bytes.Equal(magic, id3Magic) {
		tags, ok, err := readID3v1(f)
		switch {
		case err != nil:
			return TagResult{Status: TagReadError, Err: fmt.Errorf("read ID3v1 tag: %w", err)}
		case !ok:
			return TagResult{Status: TagNotPresent}
		}
		return TagResult{Status: TagFound, Tags: tags}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return TagResult{Status: TagReadError, Err: err}
	}
	tag, err := id3v2.ParseReader(f, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		return TagResult{Status: TagReadError, Err: fmt.Errorf("ID3v2.2 and older tags are not supported: %w", err)}
	}
	if err != nil {
		return TagResult{Status: TagReadError, Err: fmt.Errorf("parse ID3 tag: %w", err)}
	}

	return TagResult{Status: TagFound, Tags: mapTags(tag)}
}

// mapTags copies the frames mp3tools cares about out of the raw tag.
func mapTags(tag *id3v2.Tag) Tags {
	text := func(ids ...string) string {
		for _, id := range ids {
			if v := firstValue(tag.GetTextFrame(id).Text); v != "" {
				return v
			}
		}
		return ""
	}

	tags := Tags{
		Title:       text("TIT2"),
		Artist:      text("TPE1"),
		AlbumArtist: text("TPE2"),
		Album:       text("TALB"),
		Year:        text("TDRC", "TYER"),
		Track:       text("TRCK"),
		Genre:       text("TCON"),
	}

	for _, f := range tag.GetFrames(tag.CommonID("Comments")) {
		cf, ok := f.(id3v2.CommentFrame)
		if !ok {
			continue
		}
		tags.Comments = append(tags.Comments, Comment{
			Language:    cf.Language,
			Description: cf.Description,
			Text:        cf.Text,
		})
	}

	return tags
}

// firstValue returns the first entry of a multi-value (NUL separated) text frame.
func firstValue(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}
