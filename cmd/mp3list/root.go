package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/mp3tools/internal/config"
	"github.com/handiism/mp3tools/internal/inventory"
	ioutils "github.com/handiism/mp3tools/internal/io"
	"github.com/handiism/mp3tools/internal/tui"
)

const pathPrompt = "Enter the directory path to scan for MP3 files:"

var errInvalidPath = errors.New("Invalid path")

type options struct {
	path      string
	config    string
	outputDir string
	playlist  bool
	verbose   bool
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "mp3list",
		Short:         "Export an inventory of MP3 files to a spreadsheet",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "Directory to scan (prompted for when empty)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Settings file (.json or .toml)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for the generated files (overrides config)")
	cmd.Flags().BoolVar(&opts.playlist, "playlist", false, "Also write a playlist of the listed files")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show every file as it is read")

	return cmd
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	settings, err := config.LoadList(opts.config)
	if err != nil {
		return err
	}
	if opts.outputDir != "" {
		settings.OutputDir = opts.outputDir
	}
	if opts.playlist {
		settings.CreatePlaylist = true
	}

	printer := tui.NewPrinter(out, opts.verbose)
	printer.Title("MP3 Inventory")

	root := opts.path
	if root == "" {
		root, err = tui.NewPrompter(in, out).Ask(pathPrompt)
		if err != nil {
			return err
		}
	}
	if !ioutils.IsDir(root) {
		return errInvalidPath
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return err
	}

	records, stats, err := inventory.NewScanner(settings, printer.Handle).Scan(ctx, root)
	if err != nil {
		return err
	}

	result, err := inventory.NewExporter(settings, printer.Handle).Export(records)
	if err != nil {
		return err
	}

	printer.Println("")
	printer.Println(tui.ScanSummaryTable(stats, len(records)))
	if result.Playlist != "" {
		printer.Println(fmt.Sprintf("Playlist saved to %s", result.Playlist))
	}
	printer.Println(fmt.Sprintf("Scan complete! Data saved to %s", result.Spreadsheet))
	return nil
}
