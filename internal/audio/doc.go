// Package audio reads and writes MP3 metadata.
//
// # Tag Reading
//
// ReadTags returns a TagResult that separates "no tag" from "broken file":
//
//	res := audio.ReadTags(path)
//	if res.Status == audio.TagFound {
//	    fmt.Println(res.Tags.Artist, res.Tags.Title)
//	}
//
// Raw id3v2 frames never leave this package; callers see the typed Tags.
//
// # Inventory Records
//
// ReadTrack combines the tag, the audio properties and the file size:
//
//	rec, err := audio.ReadTrack(path)
//	// rec.Length "4:05", rec.SizeMB 5.61, rec.BitrateKbps 192, rec.Ratio 43.67...
//
// # Comment Rewriting
//
//	tagger := audio.NewTagger(audio.DefaultID3Version)
//	err := tagger.SaveComments(path, map[int]string{0: "new text"})
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true)
//	content := creator.CreatePlaylist(records)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
