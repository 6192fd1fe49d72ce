package inventory

import (
	"context"

	"github.com/handiism/mp3tools/internal/audio"
	"github.com/handiism/mp3tools/internal/config"
	"github.com/handiism/mp3tools/internal/model"
	"github.com/handiism/mp3tools/internal/report"
	"github.com/handiism/mp3tools/internal/scan"
)

// Stats summarizes a scan.
type Stats struct {
	// Found is the number of .mp3 files encountered.
	Found int

	// Failed counts files (or walk entries) that could not be read.
	Failed int

	// TotalBytes is the summed size of the files that were read.
	TotalBytes int64
}

// Scanner walks a directory tree and reads an inventory record per MP3 file.
type Scanner struct {
	exclude    []string
	readTrack  func(path string) (*model.TrackRecord, error)
	onProgress report.Handler
}

// NewScanner creates a Scanner that skips the folders named in settings.
func NewScanner(settings *config.ListSettings, onProgress report.Handler) *Scanner {
	return &Scanner{
		exclude:    settings.ExcludeFolders,
		readTrack:  audio.ReadTrack,
		onProgress: onProgress,
	}
}

// Scan reads every MP3 file under root, in walk order.
//
// Files that cannot be read are reported at LevelError and left out; the
// scan carries on with the next file. Scan only fails when ctx is
// cancelled, returning the records read so far.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*model.TrackRecord, Stats, error) {
	var (
		records []*model.TrackRecord
		stats   Stats
	)

	for path, err := range scan.MP3Files(root, s.exclude) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return records, stats, ctxErr
		}

		if err != nil {
			stats.Failed++
			s.onProgress.Emit(report.LevelWarning, "Skipping %s: %v", path, err)
			continue
		}

		stats.Found++
		s.onProgress.Emit(report.LevelVerbose, "Reading %s", path)

		rec, err := s.readTrack(path)
		if err != nil {
			stats.Failed++
			s.onProgress.Emit(report.LevelError, "Error reading %s: %v", path, err)
			continue
		}

		stats.TotalBytes += rec.SizeBytes
		records = append(records, rec)
	}

	return records, stats, nil
}
