// Package report carries progress messages from the scanning and retagging
// pipelines to whatever renders them.
//
// Components never print directly. They emit Events to a Handler supplied
// by the caller:
//
//	scanner := inventory.NewScanner(settings, func(e report.Event) {
//	    fmt.Println(e.Message)
//	})
//
// Levels are Info, Verbose, Warning, Error and Success. Per-file failures
// are always LevelError and never stop a run.
package report
