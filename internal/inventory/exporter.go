package inventory

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/handiism/mp3tools/internal/audio"
	"github.com/handiism/mp3tools/internal/config"
	ioutils "github.com/handiism/mp3tools/internal/io"
	"github.com/handiism/mp3tools/internal/model"
	"github.com/handiism/mp3tools/internal/report"
)

const (
	// FilePrefix starts every inventory file name.
	FilePrefix = "CompleteList"

	// SpreadsheetExt is the inventory spreadsheet extension.
	SpreadsheetExt = ".xlsx"

	// TimestampLayout is the time.Format layout embedded in file names.
	TimestampLayout = "20060102_150405"

	linkColor     = "0000FF"
	linkUnderline = "single"
)

// Output lists the files written by Export.
type Output struct {
	// Spreadsheet is the path of the .xlsx inventory.
	Spreadsheet string

	// Playlist is the path of the companion playlist, empty if disabled.
	Playlist string
}

// Exporter writes inventory spreadsheets.
//
// Example:
//
//	exporter := NewExporter(settings, printer.Handle)
//	out, err := exporter.Export(records)
//	// out.Spreadsheet = "./CompleteList20250102_030405.xlsx"
type Exporter struct {
	outputDir string
	widths    map[string]float64
	playlist  *audio.PlaylistCreator

	onProgress report.Handler

	// maxLinks caps the hyperlinks per sheet. Replaced in tests.
	maxLinks int

	// now is replaced in tests.
	now func() time.Time
}

// NewExporter creates an Exporter from the list settings. onProgress
// receives warnings about the spreadsheet and may be nil.
func NewExporter(settings *config.ListSettings, onProgress report.Handler) *Exporter {
	e := &Exporter{
		outputDir:  settings.OutputDir,
		widths:     settings.ColumnWidths,
		onProgress: onProgress,
		maxLinks:   excelize.TotalSheetHyperlinks,
		now:        time.Now,
	}
	if e.outputDir == "" {
		e.outputDir = "."
	}
	if settings.CreatePlaylist {
		e.playlist = audio.NewPlaylistCreator(audio.ParsePlaylistFormat(settings.PlaylistFormat), settings.M3UExtended)
	}
	return e
}

// FileName returns the timestamped base name for files generated at ts.
func FileName(ts time.Time, ext string) string {
	return FilePrefix + ts.Format(TimestampLayout) + ext
}

// Export writes the records to a new spreadsheet, decorates it, and writes
// the optional playlist. Zero records produce a header-only sheet.
func (e *Exporter) Export(records []*model.TrackRecord) (*Output, error) {
	if err := ioutils.EnsureDir(e.outputDir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	ts := e.now()
	out := &Output{
		Spreadsheet: filepath.Join(e.outputDir, FileName(ts, SpreadsheetExt)),
	}

	if err := e.write(out.Spreadsheet, records); err != nil {
		return nil, err
	}
	if err := e.Decorate(out.Spreadsheet); err != nil {
		return nil, err
	}

	if e.playlist != nil {
		out.Playlist = filepath.Join(e.outputDir, FileName(ts, e.playlist.Format().Extension()))
		content := e.playlist.CreatePlaylist(records)
		if err := ioutils.WriteFile(out.Playlist, []byte(content)); err != nil {
			return nil, fmt.Errorf("write playlist: %w", err)
		}
	}

	return out, nil
}

// write saves the header row and one row per record.
func (e *Exporter) write(path string, records []*model.TrackRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := model.Columns()
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := rec.Values()
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Decorate post-processes a saved inventory: Full Path cells become
// hyperlinks to their own text, styled blue and underlined, and every
// column whose header has a configured width gets that width. Columns
// without a configured width keep the default.
//
// A sheet holds at most excelize.TotalSheetHyperlinks links. Paths past
// that count stay plain text and a warning is reported.
func (e *Exporter) Decorate(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: missing header row", path)
	}
	header := rows[0]

	if col := indexOf(header, model.ColumnPath); col > 0 {
		if err := e.linkColumn(f, sheet, col, len(rows)); err != nil {
			return err
		}
	}

	for i, name := range header {
		width, ok := e.widths[name]
		if !ok {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set width of %q: %w", name, err)
		}
	}

	return f.Save()
}

// linkColumn turns data cells 2..lastRow of column col into hyperlinks,
// up to maxLinks of them.
func (e *Exporter) linkColumn(f *excelize.File, sheet string, col, lastRow int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: linkColor, Underline: linkUnderline},
	})
	if err != nil {
		return fmt.Errorf("create link style: %w", err)
	}

	linked, skipped := 0, 0
	for row := 2; row <= lastRow; row++ {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		target, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return err
		}
		if target == "" {
			continue
		}
		if linked >= e.maxLinks {
			skipped++
			continue
		}
		if err := f.SetCellHyperLink(sheet, cell, target, "External"); err != nil {
			return fmt.Errorf("link %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("style %s: %w", cell, err)
		}
		linked++
	}

	if skipped > 0 {
		e.onProgress.Emit(report.LevelWarning,
			"Linked the first %d paths; %d more are plain text (sheet hyperlink limit)", linked, skipped)
	}
	return nil
}

// indexOf returns the 1-based position of name in header, or 0.
func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i + 1
		}
	}
	return 0
}
