package scan

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// MP3Ext is the extension, compared case-insensitively, of files yielded by MP3Files.
const MP3Ext = ".mp3"

// Walk returns a lazy depth-first sequence of the regular files under root.
//
// Directories whose base name exactly matches an entry in exclude are not
// descended into, at any depth. The root itself is always walked, even if
// its own name is excluded. Symlinks are reported as files and never
// followed.
//
// Errors reading an entry are yielded as (path, err) and the walk moves on.
// Breaking out of the range loop stops the walk.
//
// Example:
//
//	for path, err := range scan.Walk("/music", []string{"Playlists"}) {
//	    if err != nil {
//	        log.Printf("skip %s: %v", path, err)
//	        continue
//	    }
//	    fmt.Println(path)
//	}
func Walk(root string, exclude []string) iter.Seq2[string, error] {
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(path, err) {
					return filepath.SkipAll
				}
				return nil
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				if _, ok := skip[d.Name()]; ok {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// MP3Files filters Walk down to files with the .mp3 extension.
// Errors from the underlying walk are passed through.
func MP3Files(root string, exclude []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for path, err := range Walk(root, exclude) {
			if err == nil && !IsMP3(path) {
				continue
			}
			if !yield(path, err) {
				return
			}
		}
	}
}

// IsMP3 reports whether name ends in .mp3, ignoring case.
func IsMP3(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), MP3Ext)
}
