package audio

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// id3v1Size is the length of the ID3v1 trailer at the end of a file.
const id3v1Size = 128

// readID3v1 reads the ID3v1 (or v1.1) trailer of f. ok is false when the
// file does not end with one.
func readID3v1(f *os.File) (tags Tags, ok bool, err error) {
	info, err := f.Stat()
	if err != nil {
		return Tags{}, false, err
	}
	if info.Size() < id3v1Size {
		return Tags{}, false, nil
	}

	buf := make([]byte, id3v1Size)
	if _, err := f.ReadAt(buf, info.Size()-id3v1Size); err != nil {
		return Tags{}, false, err
	}
	if string(buf[:3]) != "TAG" {
		return Tags{}, false, nil
	}

	tags = Tags{
		Title:  v1Text(buf[3:33]),
		Artist: v1Text(buf[33:63]),
		Album:  v1Text(buf[63:93]),
		Year:   v1Text(buf[93:97]),
		Genre:  v1Genre(buf[127]),
	}
	// v1.1 stores the track number in the last comment byte after a NUL.
	if buf[125] == 0 && buf[126] != 0 {
		tags.Track = strconv.Itoa(int(buf[126]))
	}
	return tags, true, nil
}

// v1Text decodes a NUL or space padded ISO-8859-1 field.
func v1Text(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		s = b
	}
	return strings.TrimRight(string(s), " ")
}

// v1Genre maps an ID3v1 genre index to its name. Unknown indexes,
// including 255 (none), give "".
func v1Genre(index byte) string {
	if int(index) < len(v1Genres) {
		return v1Genres[index]
	}
	return ""
}

// v1Genres are the ID3v1 genres with the Winamp extensions.
var v1Genres = []string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic", "Darkwave",
	"Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40", "Christian Rap",
	"Pop/Funk", "Jungle", "Native American", "Cabaret", "New Wave",
	"Psychadelic", "Rave", "Showtunes", "Trailer", "Lo-Fi", "Tribal",
	"Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical", "Rock & Roll",
	"Hard Rock", "Folk", "Folk-Rock", "National Folk", "Swing",
	"Fast Fusion", "Bebob", "Latin", "Revival", "Celtic", "Bluegrass",
	"Avantgarde", "Gothic Rock", "Progressive Rock", "Psychedelic Rock",
	"Symphonic Rock", "Slow Rock", "Big Band", "Chorus", "Easy Listening",
	"Acoustic", "Humour", "Speech", "Chanson", "Opera", "Chamber Music",
	"Sonata", "Symphony", "Booty Bass", "Primus", "Porn Groove", "Satire",
	"Slow Jam", "Club", "Tango", "Samba", "Folklore", "Ballad",
	"Power Ballad", "Rhythmic Soul", "Freestyle", "Duet", "Punk Rock",
	"Drum Solo", "A capella", "Euro-House", "Dance Hall",
}
