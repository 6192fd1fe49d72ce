package audio

import (
	"fmt"
	"slices"

	"github.com/bogem/id3v2"
)

// DefaultID3Version is the ID3v2 minor version written by a Tagger.
// v2.3 is the version most players read reliably.
const DefaultID3Version = 3

// Tagger rewrites COMM frames in MP3 files and saves the tag with a fixed
// ID3v2 version.
//
// Example:
//
//	tagger := NewTagger(DefaultID3Version)
//
//	// Replace the text of the first comment frame
//	err := tagger.SaveComments(path, map[int]string{0: "ripped by y"})
type Tagger struct {
	version byte
}

// NewTagger creates a Tagger that saves tags as ID3v2.<version>.
//
// Versions other than 3 and 4 fall back to DefaultID3Version.
func NewTagger(version int) *Tagger {
	if version != 3 && version != 4 {
		version = DefaultID3Version
	}
	return &Tagger{version: byte(version)}
}

// Version returns the ID3v2 minor version the Tagger writes.
func (t *Tagger) Version() int {
	return int(t.version)
}

// SaveComments replaces the text of COMM frames and saves the tag.
//
// updates maps a comment's index, in the order ReadTags returns
// Tags.Comments, to its new text. Frames not in updates are kept as they
// are; language and description are always preserved. The whole tag is
// written back as ID3v2.<version>; see downgrade for what changes when
// saving as v2.3.
func (t *Tagger) SaveComments(path string, updates map[int]string) error {
	if len(updates) == 0 {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer tag.Close()

	id := tag.CommonID("Comments")
	frames := slices.Clone(tag.GetFrames(id))
	tag.DeleteFrames(id)

	for i, f := range frames {
		cf, ok := f.(id3v2.CommentFrame)
		if !ok {
			continue
		}
		if text, ok := updates[i]; ok {
			cf.Text = text
		}
		tag.AddCommentFrame(cf)
	}

	if t.version == 3 {
		downgrade(tag)
	}
	tag.SetVersion(t.version)
	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	return nil
}

// downgrade makes the frames of tag valid ID3v2.3. TDRC becomes TYER
// holding the first four characters of the date, and every text encoding
// v2.3 lacks (UTF-8, UTF-16BE) becomes UTF-16. Frame order is kept.
func downgrade(tag *id3v2.Tag) {
	if date := tag.GetTextFrame("TDRC"); date.Text != "" {
		tag.DeleteFrames("TDRC")
		if tag.GetTextFrame("TYER").Text == "" {
			year := date.Text
			if len(year) > 4 {
				year = year[:4]
			}
			tag.AddTextFrame("TYER", date.Encoding, year)
		}
	}

	for id, frames := range tag.AllFrames() {
		frames = slices.Clone(frames)
		changed := false
		for i, f := range frames {
			if nf, ok := reencode(f); ok {
				frames[i] = nf
				changed = true
			}
		}
		if !changed {
			continue
		}
		tag.DeleteFrames(id)
		for _, f := range frames {
			tag.AddFrame(id, f)
		}
	}
}

// reencode returns f with a v2.3 encoding, reporting whether it changed.
func reencode(f id3v2.Framer) (id3v2.Framer, bool) {
	switch fr := f.(type) {
	case id3v2.TextFrame:
		if enc, ok := v23Encoding(fr.Encoding); ok {
			fr.Encoding = enc
			return fr, true
		}
	case id3v2.CommentFrame:
		if enc, ok := v23Encoding(fr.Encoding); ok {
			fr.Encoding = enc
			return fr, true
		}
	case id3v2.UserDefinedTextFrame:
		if enc, ok := v23Encoding(fr.Encoding); ok {
			fr.Encoding = enc
			return fr, true
		}
	case id3v2.UnsynchronisedLyricsFrame:
		if enc, ok := v23Encoding(fr.Encoding); ok {
			fr.Encoding = enc
			return fr, true
		}
	case id3v2.PictureFrame:
		if enc, ok := v23Encoding(fr.Encoding); ok {
			fr.Encoding = enc
			return fr, true
		}
	}
	return f, false
}

// v23Encoding maps e to UTF-16 unless v2.3 already supports it.
func v23Encoding(e id3v2.Encoding) (id3v2.Encoding, bool) {
	if e.Equals(id3v2.EncodingISO) || e.Equals(id3v2.EncodingUTF16) {
		return e, false
	}
	return id3v2.EncodingUTF16, true
}
