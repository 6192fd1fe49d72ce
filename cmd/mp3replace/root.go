package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/mp3tools/internal/config"
	"github.com/handiism/mp3tools/internal/retag"
	"github.com/handiism/mp3tools/internal/tui"
)

const confirmPrompt = "Proceed with these settings? (Y/N)"

type options struct {
	config  string
	init    bool
	verbose bool
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "mp3replace",
		Short:         "Find and replace text in MP3 file names and comments",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.init {
				return writeDefaultConfig(opts.config, cmd.OutOrStdout())
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", config.DefaultReplaceConfigFile, "Settings file (.json or .toml)")
	cmd.Flags().BoolVar(&opts.init, "init", false, "Write a default settings file and exit")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show every file as it is checked")

	return cmd
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	settings, err := config.LoadReplace(opts.config)
	if err != nil {
		return err
	}

	printer := tui.NewPrinter(out, opts.verbose)
	printer.Title("MP3 Find & Replace")
	printer.Println(tui.ReplaceSettingsTable(*settings))

	ok, err := tui.NewPrompter(in, out).Confirm(confirmPrompt)
	if err != nil && !errors.Is(err, tui.ErrCancelled) {
		return err
	}
	if !ok {
		printer.Println("Aborted by user.")
		return nil
	}

	_, err = retag.NewMutator(*settings, opts.config, printer.Handle).Run(ctx)
	return err
}

// writeDefaultConfig creates a settings file with default values. An
// existing file is left alone.
func writeDefaultConfig(path string, out io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultReplaceSettings()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote default settings to %s. Set \"folder_path\" before running.\n", path)
	return nil
}
