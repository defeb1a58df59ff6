package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/songdb/flatfile"
	"github.com/user/songdb/tui"
)

var Version = "0.1.0"

// errDeclined ends the program quietly after the user refuses to create a database.
var errDeclined = errors.New("declined")

func newRootCommand() (*cobra.Command, *commandContext) {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "songdb <database-file>",
		Short: "Maintain a catalog of songs in a flat text file",
		Long: `songdb edits a song database: a text file holding one song per line
(title, item code, description, artist, album, price).

Run it with a database file to open the editor. If the file does not exist
yet you will be asked whether to create it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runEditor(cmd, ctx, args[0])
			if errors.Is(err, errDeclined) {
				fmt.Fprintln(cmd.OutOrStdout(), "Goodbye.")
				return nil
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newEditCommand(ctx))
	rootCmd.AddCommand(newDeleteCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newSnapshotsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd, ctx
}

// execute runs rootCmd and closes the shared state whether or not the
// command succeeded.
func execute(rootCmd *cobra.Command, ctx *commandContext) error {
	defer ctx.close()
	return rootCmd.Execute()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "songdb version %s\n", Version)
		},
	}
}

// runEditor opens path in the TUI, offering to create it when missing.
func runEditor(cmd *cobra.Command, ctx *commandContext, path string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	session, err := ctx.openSession(path)
	if errors.Is(err, flatfile.ErrNotFound) {
		create, perr := confirmCreate(cmd, path)
		if perr != nil {
			return perr
		}
		if !create {
			logger.Info("database creation declined", "path", path)
			return errDeclined
		}
		if err := flatfile.Create(path); err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		logger.Info("database created", "path", path)
		session, err = ctx.openSession(path)
	}
	if err != nil {
		return err
	}

	if err := tui.Run(session, cfg, path, logger); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func Execute() {
	if err := execute(newRootCommand()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
