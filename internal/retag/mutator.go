package retag

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/handiism/mp3tools/internal/audio"
	"github.com/handiism/mp3tools/internal/config"
	ioutils "github.com/handiism/mp3tools/internal/io"
	"github.com/handiism/mp3tools/internal/model"
	"github.com/handiism/mp3tools/internal/report"
	"github.com/handiism/mp3tools/internal/scan"
)

// Messages printed at the end of a run.
const (
	SafeModeMessage = "SAFE MODE ENABLED - No files were changed."
	AppliedMessage  = "Changes applied."
)

// Summary counts the outcome of a run.
type Summary struct {
	// Files is the number of MP3 files visited.
	Files int

	// FilenameChanges and CommentChanges count detected changes, applied
	// or not.
	FilenameChanges int
	CommentChanges  int

	// Errors counts files whose rename, tag read or tag save failed.
	Errors int

	// SafeMode reports whether the run was a dry run.
	SafeMode bool

	// Changes lists every detected change in discovery order.
	Changes []model.Change
}

// Total returns the number of detected changes.
func (s Summary) Total() int {
	return s.FilenameChanges + s.CommentChanges
}

// Mutator applies the find-and-replace settings to a folder of MP3 files.
type Mutator struct {
	settings   config.ReplaceSettings
	configPath string
	apply      applier
	onProgress report.Handler
}

// NewMutator creates a Mutator for settings. configPath is only used in
// the closing safe-mode hint.
//
// settings.SafeMode is read here and nowhere else.
func NewMutator(settings config.ReplaceSettings, configPath string, onProgress report.Handler) *Mutator {
	var a applier = dryRunApplier{}
	if !settings.SafeMode {
		a = fileApplier{tagger: audio.NewTagger(settings.ID3Version)}
	}
	return &Mutator{
		settings:   settings,
		configPath: configPath,
		apply:      a,
		onProgress: onProgress,
	}
}

// Run processes every MP3 file under settings.FolderPath, one at a time.
//
// Per-file failures are reported at LevelError and counted; the run goes
// on. Run returns early only when ctx is cancelled.
func (m *Mutator) Run(ctx context.Context) (Summary, error) {
	summary := Summary{SafeMode: m.settings.SafeMode}

	for path, err := range scan.MP3Files(m.settings.FolderPath, m.settings.ExcludeFolders) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, ctxErr
		}
		if err != nil {
			summary.Errors++
			m.onProgress.Emit(report.LevelWarning, "Skipping %s: %v", path, err)
			continue
		}

		summary.Files++
		changes, err := m.ProcessFile(path)
		for _, c := range changes {
			switch c.Kind {
			case model.ChangeFilename:
				summary.FilenameChanges++
			case model.ChangeComment:
				summary.CommentChanges++
			}
		}
		summary.Changes = append(summary.Changes, changes...)
		if err != nil {
			summary.Errors++
			m.onProgress.Emit(report.LevelError, "Error processing %s: %v", path, err)
		}
	}

	m.onProgress.Emit(report.LevelInfo, "Files checked: %d, file name changes: %d, comment changes: %d, errors: %d",
		summary.Files, summary.FilenameChanges, summary.CommentChanges, summary.Errors)
	if summary.SafeMode {
		m.onProgress.Emit(report.LevelWarning, "%s", SafeModeMessage)
		m.onProgress.Emit(report.LevelInfo, "Set \"safe_mode\": false in %s to apply changes.", m.configPath)
	} else {
		m.onProgress.Emit(report.LevelSuccess, "%s", AppliedMessage)
	}

	return summary, nil
}

// ProcessFile checks one file, reporting and applying its changes.
//
// The returned changes include those detected before an error stopped
// the file.
func (m *Mutator) ProcessFile(path string) ([]model.Change, error) {
	m.onProgress.Emit(report.LevelVerbose, "Checking %s", path)

	var changes []model.Change

	orig := path
	path, change, err := m.renameFile(path)
	if change != nil {
		changes = append(changes, *change)
	}
	if err != nil {
		return changes, fmt.Errorf("rename: %w", err)
	}

	commentChanges, err := m.retagComments(orig, path)
	changes = append(changes, commentChanges...)
	if err != nil {
		return changes, err
	}

	return changes, nil
}

// renameFile handles the file name step and returns the path the comment
// step should read.
func (m *Mutator) renameFile(path string) (string, *model.Change, error) {
	oldName := filepath.Base(path)
	newName, ok := replace(oldName, m.settings.FindName, m.settings.ReplaceName)
	if !ok {
		return path, nil, nil
	}

	change := &model.Change{Kind: model.ChangeFilename, Path: path, Old: oldName, New: newName}
	m.report(*change)

	if err := ioutils.ValidateFileName(newName); err != nil {
		return path, change, err
	}
	newPath, err := m.apply.Rename(path, filepath.Join(filepath.Dir(path), newName))
	return newPath, change, err
}

// retagComments handles the comment step on path. Changes are recorded
// against orig, the name the file had before the rename step.
func (m *Mutator) retagComments(orig, path string) ([]model.Change, error) {
	if m.settings.FindComment == "" {
		return nil, nil
	}

	res := audio.ReadTags(path)
	switch res.Status {
	case audio.TagNotPresent:
		return nil, nil
	case audio.TagReadError:
		return nil, fmt.Errorf("read tag: %w", res.Err)
	}

	var (
		changes []model.Change
		updates = make(map[int]string)
	)
	for i, c := range res.Tags.Comments {
		text, ok := replace(c.Text, m.settings.FindComment, m.settings.ReplaceComment)
		if !ok {
			continue
		}
		change := model.Change{Kind: model.ChangeComment, Path: orig, Old: c.Text, New: text}
		m.report(change)
		changes = append(changes, change)
		updates[i] = text
	}

	if err := m.apply.SaveComments(path, updates); err != nil {
		return changes, fmt.Errorf("save tag: %w", err)
	}
	return changes, nil
}

func (m *Mutator) report(c model.Change) {
	m.onProgress.Emit(report.LevelInfo, "%s", c.String())
}

// replace substitutes every non-overlapping find in s in a single pass.
// Text is compared in Unicode NFC, so decomposed file names match composed
// search strings. It reports false when find is empty, absent, or the
// result is unchanged.
func replace(s, find, repl string) (string, bool) {
	if find == "" {
		return s, false
	}
	src := norm.NFC.String(s)
	find = norm.NFC.String(find)
	if !strings.Contains(src, find) {
		return s, false
	}
	out := strings.ReplaceAll(src, find, norm.NFC.String(repl))
	return out, out != src
}
