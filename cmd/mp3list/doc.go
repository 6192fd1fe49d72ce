// Command mp3list scans a directory tree for MP3 files and writes a
// spreadsheet inventory of their tags and audio properties.
//
// Usage:
//
//	mp3list [--path DIR] [--config FILE] [--output-dir DIR] [--playlist] [--verbose]
//
// Without --path the directory is asked for interactively.
package main
