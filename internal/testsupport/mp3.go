// Package testsupport builds MP3 fixtures for package tests.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// MPEG-1 Layer III, 128 kbps, 44.1 kHz, joint stereo, no CRC, no padding.
var frameHeader = []byte{0xFF, 0xFB, 0x90, 0x64}

// FrameSize is the byte length of one fixture audio frame (144*128000/44100).
const FrameSize = 417

// FixtureBitrate is the constant bitrate, in kbps, of the fixture audio.
const FixtureBitrate = 128

// Tag describes the ID3v2 tag written in front of the fixture audio.
type Tag struct {
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Year        string
	Track       string
	Genre       string
	Comments    []string

	// Version is the ID3v2 minor version (3 or 4). Zero means 4.
	Version byte
}

// WriteMP3 creates an MP3 file of frames silent CBR frames at path. A nil
// tag leaves the file without any ID3 header.
func WriteMP3(t testing.TB, path string, frames int, tag *Tag) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	frame := make([]byte, FrameSize)
	copy(frame, frameHeader)
	data := make([]byte, 0, frames*FrameSize)
	for i := 0; i < frames; i++ {
		data = append(data, frame...)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	if tag != nil {
		WriteTag(t, path, *tag)
	}
}

// WriteTag writes tag into an existing file, replacing any previous tag.
func WriteTag(t testing.TB, path string, want Tag) {
	t.Helper()

	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		t.Fatalf("open tag %s: %v", path, err)
	}
	defer tag.Close()

	version := want.Version
	if version == 0 {
		version = 4
	}
	tag.SetVersion(version)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	text := func(id, value string) {
		if value != "" {
			tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
		}
	}
	text("TIT2", want.Title)
	text("TPE1", want.Artist)
	text("TPE2", want.AlbumArtist)
	text("TALB", want.Album)
	if version == 3 {
		text("TYER", want.Year)
	} else {
		text("TDRC", want.Year)
	}
	text("TRCK", want.Track)
	text("TCON", want.Genre)

	for i, c := range want.Comments {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "eng",
			Description: fmt.Sprintf("c%d", i),
			Text:        c,
		})
	}

	if err := tag.Save(); err != nil {
		t.Fatalf("save tag %s: %v", path, err)
	}
}

// CommentTexts returns the text of every COMM frame in path, in frame order.
// A file without a tag yields nil.
func CommentTexts(t testing.TB, path string) []string {
	t.Helper()

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open tag %s: %v", path, err)
	}
	defer tag.Close()

	var texts []string
	for _, f := range tag.GetFrames(tag.CommonID("Comments")) {
		if cf, ok := f.(id3v2.CommentFrame); ok {
			texts = append(texts, cf.Text)
		}
	}
	return texts
}

// TagVersion returns the ID3v2 minor version of the tag in path.
func TagVersion(t testing.TB, path string) byte {
	t.Helper()

	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		t.Fatalf("open tag %s: %v", path, err)
	}
	defer tag.Close()
	return tag.Version()
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// V1Tag describes an ID3v1.1 trailer. Text fields are ISO-8859-1.
type V1Tag struct {
	Title  string
	Artist string
	Album  string
	Year   string
	Track  byte
	Genre  byte
}

// AppendID3v1 appends a 128-byte ID3v1.1 trailer to the file at path.
func AppendID3v1(t testing.TB, path string, tag V1Tag) {
	t.Helper()

	buf := make([]byte, 128)
	copy(buf, "TAG")
	latin1 := func(dst []byte, s string) {
		i := 0
		for _, r := range s {
			if i == len(dst) {
				break
			}
			dst[i] = byte(r)
			i++
		}
	}
	latin1(buf[3:33], tag.Title)
	latin1(buf[33:63], tag.Artist)
	latin1(buf[63:93], tag.Album)
	latin1(buf[93:97], tag.Year)
	buf[126] = tag.Track
	buf[127] = tag.Genre

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	if _, err := f.Write(buf); err != nil {
		t.Fatalf("append ID3v1 to %s: %v", path, err)
	}
}
