// Package retag implements bulk find-and-replace over MP3 file names and
// ID3 comment frames.
//
// A Mutator walks the configured folder and, for each MP3 file, first
// checks the base file name and then every COMM frame for the configured
// substrings. Each match becomes a model.Change that is reported right
// away through the progress handler.
//
// # Safe Mode
//
// Safe mode is decided once, in NewMutator. With safe mode on, the Mutator
// uses a dry-run applier whose rename and save calls do nothing; detection
// and reporting run exactly the same code in both modes, so a safe run
// reports the changes a real run would make.
//
// # Usage
//
//	m := retag.NewMutator(settings, "config.json", func(e report.Event) {
//	    fmt.Println(e.Message)
//	})
//	summary, err := m.Run(ctx)
//	fmt.Printf("%d files, %d changes\n", summary.Files, summary.Total())
package retag
