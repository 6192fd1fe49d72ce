// Package inventory builds the MP3 library spreadsheet.
//
// # Scanning
//
// Scanner walks the library and reads one record per file. Unreadable
// files are reported through the progress handler and skipped:
//
//	scanner := inventory.NewScanner(settings, onProgress)
//	records, stats, err := scanner.Scan(ctx, "/music")
//
// # Exporting
//
// Exporter writes CompleteList<YYYYMMDD_HHMMSS>.xlsx with the columns of
// model.Columns(), then reopens it to turn the Full Path column into
// clickable links and apply the configured column widths:
//
//	out, err := inventory.NewExporter(settings, printer.Handle).Export(records)
//	fmt.Println(out.Spreadsheet)
//
// With create_playlist enabled, a playlist with the same timestamped name
// is written next to the spreadsheet.
package inventory
