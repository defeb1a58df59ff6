package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/songdb/db"
	"github.com/user/songdb/flatfile"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <database-file> <sqlite-db>",
		Short: "Export the catalog as a SQLite snapshot",
		Long: `Copy every song in the database into a new snapshot in a SQLite file.
The SQLite file is created if needed; earlier snapshots are kept.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := ctx.loadCatalog(args[0])
			if err != nil {
				return describeLoadError(err)
			}

			database, err := db.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open snapshot database: %w", err)
			}
			defer database.Close()

			source, err := filepath.Abs(args[0])
			if err != nil {
				source = args[0]
			}
			id, err := db.InsertSnapshot(database, source, cat.All())
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			logger, _ := ctx.ensureLogger()
			logger.Info("snapshot exported", "snapshot_id", id, "songs", cat.Len(), "target", args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d song(s) as snapshot %d\n", cat.Len(), id)
			return nil
		},
	}
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var snapshotID int64
	var force bool

	cmd := &cobra.Command{
		Use:   "import <sqlite-db> <database-file>",
		Short: "Write a SQLite snapshot out as a database file",
		Long: `Restore a snapshot (the newest unless --id is given) into a database file.
An existing database file is only replaced with --force.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[1]
			if _, err := os.Stat(target); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to replace it", target)
			}

			database, err := openExistingSnapshotDB(args[0])
			if err != nil {
				return err
			}
			defer database.Close()

			snap, err := db.GetSnapshot(database, snapshotID)
			if err != nil {
				return err
			}
			songs, err := db.SnapshotSongs(database, snap.ID)
			if err != nil {
				return err
			}
			if err := flatfile.Save(target, songs); err != nil {
				return err
			}

			if logger, err := ctx.ensureLogger(); err == nil {
				logger.Info("snapshot imported", "snapshot_id", snap.ID, "songs", len(songs), "target", target)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d song(s) from snapshot %d into %s\n", len(songs), snap.ID, target)
			return nil
		},
	}

	cmd.Flags().Int64Var(&snapshotID, "id", 0, "Snapshot ID (default newest)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing database file")
	return cmd
}

func newSnapshotsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "snapshots <sqlite-db>",
		Short: "List snapshots in a SQLite file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openExistingSnapshotDB(args[0])
			if err != nil {
				return err
			}
			defer database.Close()

			snapshots, err := db.ListSnapshots(database)
			if err != nil {
				return err
			}

			if jsonOutput {
				type snapshotJSON struct {
					ID        int64     `json:"id"`
					Source    string    `json:"source"`
					SongCount int       `json:"song_count"`
					CreatedAt time.Time `json:"created_at"`
				}
				out := make([]snapshotJSON, 0, len(snapshots))
				for _, s := range snapshots {
					out = append(out, snapshotJSON(s))
				}
				return writeJSON(cmd, out)
			}

			if len(snapshots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No snapshots found.")
				return nil
			}
			rows := make([][]string, 0, len(snapshots))
			for _, s := range snapshots {
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					s.CreatedAt.Local().Format("2006-01-02 15:04"),
					strconv.Itoa(s.SongCount),
					s.Source,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Created", "Songs", "Source"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <sqlite-db> <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid snapshot ID: %s", args[1])
			}
			database, err := openExistingSnapshotDB(args[0])
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.DeleteSnapshot(database, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %d deleted\n", id)
			return nil
		},
	})

	return cmd
}

// openExistingSnapshotDB opens a SQLite file that must already exist, so a
// mistyped path is not silently created.
func openExistingSnapshotDB(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("snapshot database not found: %s", path)
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}
	return database, nil
}
