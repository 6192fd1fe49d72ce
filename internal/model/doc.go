// Package model defines the core data structures shared by the mp3list and
// mp3replace tools.
//
// # TrackRecord
//
// TrackRecord is one row of the inventory spreadsheet:
//
//	rec, _ := audio.ReadTrack(path)
//	row := rec.Values() // ordered like model.Columns()
//
// # Change
//
// Change is one filename or comment modification found by the retag
// mutator:
//
//	c := model.Change{Kind: model.ChangeComment, Old: "ripped by x", New: "ripped by y"}
//	fmt.Println(c) // [COMMENT] ripped by x → ripped by y
package model
