// Package config provides configuration loading for mp3list and mp3replace.
//
// This package handles:
//   - Loading settings from JSON or TOML files (chosen by extension)
//   - Default configuration values
//   - Validation of required fields
//
// # mp3replace
//
// The rename/retag tool reads a required file, config.json by default:
//
//	{
//	  "folder_path": "/music",
//	  "find_name": "_old",
//	  "replace_name": "_new",
//	  "find_comment": "ripped by x",
//	  "replace_comment": "ripped by y",
//	  "safe_mode": true
//	}
//
// Omitted keys keep their defaults; safe_mode defaults to true so a
// partially written file never mutates anything.
//
//	settings, err := config.LoadReplace("config.json")
//	if errors.Is(err, config.ErrInvalidFolder) {
//	    // folder_path missing or not a directory
//	}
//
// # mp3list
//
// The inventory tool's file is optional and controls excluded folder names,
// spreadsheet column widths and the companion playlist:
//
//	settings, err := config.LoadList("") // defaults
//
// # Saving Settings
//
//	err := config.Save("config.toml", config.DefaultReplaceSettings())
package config
