package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/user/songdb/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and system support",
		Long:  `Check that the configuration loads, the log directory is writable and the clipboard can be used.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking dependencies...")
			fmt.Fprintln(out)

			cfg, err := ctx.ensureConfig()
			if err != nil {
				fmt.Fprintf(out, "✗ config: %v\n", err)
				return errors.New("configuration is invalid")
			}
			fmt.Fprintln(out, "✓ config: OK")

			allGood := true
			if err := deps.CheckWritableDir("log directory", filepath.Dir(cfg.LogPath)); err != nil {
				fmt.Fprintf(out, "✗ log directory: %s\n", filepath.Dir(cfg.LogPath))
				allGood = false
			} else {
				fmt.Fprintln(out, "✓ log directory: OK")
			}

			if err := deps.CheckClipboard(); err != nil {
				fmt.Fprintln(out, "✗ clipboard: NOT AVAILABLE")
				fmt.Fprintf(out, "  To copy item codes, %s\n", deps.ClipboardInstallHint)
			} else {
				fmt.Fprintln(out, "✓ clipboard: OK")
			}

			fmt.Fprintln(out)
			if !allGood {
				return errors.New("some checks failed")
			}
			fmt.Fprintln(out, "Everything songdb needs is available!")
			return nil
		},
	}
}
