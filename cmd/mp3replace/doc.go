// Command mp3replace renames MP3 files and rewrites their ID3 comments by
// plain substring find and replace.
//
// Settings come from config.json in the working directory, or the file
// given with --config. Safe mode is on by default: changes are reported
// but nothing is written until "safe_mode" is set to false.
//
// Usage:
//
//	mp3replace [--config FILE] [--verbose]
//	mp3replace --init [--config FILE]
package main
