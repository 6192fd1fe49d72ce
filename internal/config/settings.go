package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultReplaceConfigFile is the file mp3replace reads when no --config is given.
const DefaultReplaceConfigFile = "config.json"

var (
	// ErrInvalidFolder is returned when folder_path is empty or not a directory.
	ErrInvalidFolder = errors.New("invalid folder_path")

	// ErrUnsupportedFormat is returned for config files that are neither JSON nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ListSettings holds the mp3list options.
type ListSettings struct {
	ExcludeFolders []string           `json:"exclude_folders" toml:"exclude_folders"`
	ColumnWidths   map[string]float64 `json:"column_widths" toml:"column_widths"`
	OutputDir      string             `json:"output_dir" toml:"output_dir"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist" toml:"create_playlist"`
	PlaylistFormat string `json:"playlist_format" toml:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended" toml:"m3u_extended"`
}

// ReplaceSettings holds the mp3replace options. It is loaded once and
// passed by value; nothing mutates it after Load returns.
type ReplaceSettings struct {
	FolderPath     string   `json:"folder_path" toml:"folder_path"`
	FindName       string   `json:"find_name" toml:"find_name"`
	ReplaceName    string   `json:"replace_name" toml:"replace_name"`
	FindComment    string   `json:"find_comment" toml:"find_comment"`
	ReplaceComment string   `json:"replace_comment" toml:"replace_comment"`
	SafeMode       bool     `json:"safe_mode" toml:"safe_mode"`
	ExcludeFolders []string `json:"exclude_folders" toml:"exclude_folders"`

	// ID3Version is the ID3v2 minor version written back (3 or 4).
	ID3Version int `json:"id3_version" toml:"id3_version"`
}

// DefaultColumnWidths returns the spreadsheet column widths keyed by header.
func DefaultColumnWidths() map[string]float64 {
	return map[string]float64{
		"Title":                50,
		"Contributing Artists": 30,
		"Album Artist":         25,
		"Album":                25,
		"Year":                 8,
		"#":                    6,
		"Genre":                15,
		"Length":               8,
		"MB":                   8,
		"kbps":                 8,
		"Full Path":            100,
		"Length/Size Ratio":    20,
	}
}

// DefaultListSettings returns mp3list settings with default values.
func DefaultListSettings() *ListSettings {
	return &ListSettings{
		ExcludeFolders: []string{"sound effects", "Playlists", "2. Audiobooks"},
		ColumnWidths:   DefaultColumnWidths(),
		OutputDir:      ".",
		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,
	}
}

// DefaultReplaceSettings returns mp3replace settings with default values.
// Safe mode is on unless the config file turns it off.
func DefaultReplaceSettings() *ReplaceSettings {
	return &ReplaceSettings{
		SafeMode:   true,
		ID3Version: 3,
	}
}

// LoadList reads mp3list settings from a JSON or TOML file.
// An empty path returns the defaults.
func LoadList(path string) (*ListSettings, error) {
	settings := DefaultListSettings()
	if path == "" {
		return settings, nil
	}
	if err := decodeFile(path, settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadReplace reads mp3replace settings from a JSON or TOML file.
// Unlike LoadList the file must exist, and folder_path must name an
// existing directory.
func LoadReplace(path string) (*ReplaceSettings, error) {
	settings := DefaultReplaceSettings()
	if err := decodeFile(path, settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks the list settings.
func (s *ListSettings) Validate() error {
	switch s.PlaylistFormat {
	case "m3u", "pls":
	default:
		return fmt.Errorf("playlist_format %q: must be m3u or pls", s.PlaylistFormat)
	}
	for name, width := range s.ColumnWidths {
		if width <= 0 {
			return fmt.Errorf("column_widths[%q]: width must be positive", name)
		}
	}
	return nil
}

// Validate checks that folder_path is an existing directory and the ID3
// version is writable.
func (s *ReplaceSettings) Validate() error {
	if strings.TrimSpace(s.FolderPath) == "" {
		return fmt.Errorf("%w: folder_path is empty", ErrInvalidFolder)
	}
	info, err := os.Stat(s.FolderPath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: '%s'", ErrInvalidFolder, s.FolderPath)
	}
	if s.ID3Version != 3 && s.ID3Version != 4 {
		return fmt.Errorf("id3_version %d: must be 3 or 4", s.ID3Version)
	}
	return nil
}

// Save writes settings to a JSON or TOML file, chosen by extension.
func Save(path string, settings any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch formatOf(path) {
	case "toml":
		data, err = toml.Marshal(settings)
	case "json":
		data, err = json.MarshalIndent(settings, "", "  ")
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s not found, please create it first: %w", path, err)
		}
		return fmt.Errorf("read config: %w", err)
	}

	switch formatOf(path) {
	case "toml":
		err = toml.Unmarshal(data, v)
	case "json":
		err = json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".json", "":
		return "json"
	default:
		return ""
	}
}
