// Package ioutils provides small file system helpers shared by the
// inventory exporter and the retag mutator.
//
// # Renaming
//
// RenameFile never overwrites an existing file, so a find/replace that maps
// two names onto one is reported as an error instead of losing data:
//
//	if err := ioutils.ValidateFileName(newName); err != nil {
//	    return err
//	}
//	err := ioutils.RenameFile(oldPath, filepath.Join(dir, newName))
//
// # Output Files
//
//	err := ioutils.EnsureDir(outputDir)
//	err = ioutils.WriteFile(filepath.Join(outputDir, "list.m3u"), data)
package ioutils
