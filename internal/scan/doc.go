// Package scan enumerates MP3 files under a directory tree.
//
// Walk and MP3Files return iter.Seq2 sequences, so files are produced one at
// a time as the caller consumes them:
//
//	for path, err := range scan.MP3Files(root, settings.ExcludeFolders) {
//	    ...
//	}
//
// Exclusion is by exact directory name, not by path: excluding "Playlists"
// skips both /music/Playlists and /music/Artist/Playlists.
package scan
