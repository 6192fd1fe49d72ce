package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/handiism/mp3tools/internal/config"
	"github.com/handiism/mp3tools/internal/inventory"
)

// renderKeyValues renders a two-column table with a header.
func renderKeyValues(header [2]string, rows [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{header[0], header[1]})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// ReplaceSettingsTable renders the effective mp3replace settings.
// Find and replace values are quoted so whitespace stays visible.
func ReplaceSettingsTable(s config.ReplaceSettings) string {
	exclude := "(none)"
	if len(s.ExcludeFolders) > 0 {
		exclude = strings.Join(s.ExcludeFolders, ", ")
	}
	return renderKeyValues([2]string{"Setting", "Value"}, [][2]string{
		{"Folder path", s.FolderPath},
		{"Find in name", strconv.Quote(s.FindName)},
		{"Replace in name", strconv.Quote(s.ReplaceName)},
		{"Find in comment", strconv.Quote(s.FindComment)},
		{"Replace in comment", strconv.Quote(s.ReplaceComment)},
		{"Safe mode", strconv.FormatBool(s.SafeMode)},
		{"Excluded folders", exclude},
		{"ID3 version", fmt.Sprintf("2.%d", s.ID3Version)},
	})
}

// ScanSummaryTable renders the outcome of an inventory scan.
func ScanSummaryTable(stats inventory.Stats, records int) string {
	return renderKeyValues([2]string{"Scan", "Count"}, [][2]string{
		{"MP3 files found", strconv.Itoa(stats.Found)},
		{"Tracks listed", strconv.Itoa(records)},
		{"Errors", strconv.Itoa(stats.Failed)},
		{"Total size", humanize.IBytes(uint64(stats.TotalBytes))},
	})
}
