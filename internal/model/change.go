package model

import (
	"fmt"
	"strings"
)

// ChangeKind identifies what a Change modifies.
type ChangeKind int

const (
	// ChangeFilename is a rename of the file's base name.
	ChangeFilename ChangeKind = iota

	// ChangeComment is a rewrite of one COMM frame's text.
	ChangeComment
)

// String returns the lowercase kind name ("filename" or "comment").
func (k ChangeKind) String() string {
	switch k {
	case ChangeFilename:
		return "filename"
	case ChangeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Change is a single detected (and possibly applied) modification.
//
// Changes are produced in discovery order: the filename change of a file,
// if any, always precedes its comment changes.
type Change struct {
	// Kind is the modified attribute.
	Kind ChangeKind

	// Path is the file the change was detected on, before any rename.
	Path string

	// Old is the value before replacement.
	Old string

	// New is the value after replacement.
	New string
}

// String renders the change the way it is reported to the operator.
//
//	[FILENAME] old.mp3 → new.mp3
func (c Change) String() string {
	return fmt.Sprintf("[%s] %s → %s", strings.ToUpper(c.Kind.String()), c.Old, c.New)
}
