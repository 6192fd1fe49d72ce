package retag

import (
	"github.com/handiism/mp3tools/internal/audio"
	ioutils "github.com/handiism/mp3tools/internal/io"
)

// applier performs the mutating half of a run.
type applier interface {
	// Rename moves src to dst and returns the path to use afterwards.
	Rename(src, dst string) (string, error)

	// SaveComments writes new comment texts keyed by frame index.
	SaveComments(path string, updates map[int]string) error
}

// fileApplier changes files on disk.
type fileApplier struct {
	tagger *audio.Tagger
}

func (a fileApplier) Rename(src, dst string) (string, error) {
	if err := ioutils.RenameFile(src, dst); err != nil {
		return src, err
	}
	return dst, nil
}

func (a fileApplier) SaveComments(path string, updates map[int]string) error {
	return a.tagger.SaveComments(path, updates)
}

// dryRunApplier never touches the file system.
type dryRunApplier struct{}

func (dryRunApplier) Rename(src, _ string) (string, error) { return src, nil }

func (dryRunApplier) SaveComments(string, map[int]string) error { return nil }
