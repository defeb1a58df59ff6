package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/songdb/editor"
	"github.com/user/songdb/pkg/pricefmt"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list <database-file>",
		Short: "List all songs",
		Long:  `Display every song in the database, ordered by item code.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cat, _, err := ctx.loadCatalog(args[0])
			if err != nil {
				return describeLoadError(err)
			}
			songs := cat.All()

			if jsonOutput {
				return writeJSON(cmd, toSongJSON(songs))
			}

			out := cmd.OutOrStdout()
			if len(songs) == 0 {
				fmt.Fprintln(out, "Database empty. Add some songs!")
				return nil
			}

			rows := make([][]string, 0, len(songs))
			for _, s := range songs {
				rows = append(rows, []string{
					s.ItemCode,
					s.Title,
					s.Artist,
					s.Album,
					s.Description,
					pricefmt.Display(s.Price, cfg.Currency),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Code", "Title", "Artist", "Album", "Description", "Price"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "\n%d song(s) found.\n", len(songs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// songFlags binds one string flag per song field.
type songFlags struct {
	values map[editor.Field]*string
}

var songFlagNames = map[editor.Field]string{
	editor.FieldTitle:       "title",
	editor.FieldItemCode:    "code",
	editor.FieldDescription: "description",
	editor.FieldArtist:      "artist",
	editor.FieldAlbum:       "album",
	editor.FieldPrice:       "price",
}

func bindSongFlags(cmd *cobra.Command, skip ...editor.Field) *songFlags {
	sf := &songFlags{values: make(map[editor.Field]*string)}
	for _, f := range editor.AllFields {
		skipped := false
		for _, s := range skip {
			skipped = skipped || s == f
		}
		if skipped {
			continue
		}
		sf.values[f] = cmd.Flags().String(songFlagNames[f], "", "Song "+f.Label())
	}
	return sf
}

// apply dispatches a SetField for every flag the user set. With onlyChanged
// unset, every bound field is sent so blank ones fail validation.
func (sf *songFlags) apply(cmd *cobra.Command, session *editor.Session, onlyChanged bool) error {
	for _, f := range editor.AllFields {
		v, ok := sf.values[f]
		if !ok {
			continue
		}
		if onlyChanged && !cmd.Flags().Changed(songFlagNames[f]) {
			continue
		}
		if err := session.Dispatch(editor.SetField{Field: f, Value: *v}); err != nil {
			return err
		}
	}
	return nil
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var flags *songFlags

	cmd := &cobra.Command{
		Use:   "add <database-file>",
		Short: "Add a song",
		Long: `Add a song to the database. Every field is required and the item code
must not already be in use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(args[0])
			if err != nil {
				return err
			}
			if err := session.Dispatch(editor.BeginAdd{}); err != nil {
				return err
			}
			if err := flags.apply(cmd, session, false); err != nil {
				return err
			}
			if err := session.Dispatch(editor.Accept{}); err != nil {
				return err
			}
			if err := session.Dispatch(editor.Save{}); err != nil {
				return fmt.Errorf("save database: %w", err)
			}

			song, _ := session.Catalog().Get(session.State().Selected)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", song.Title, song.ItemCode)
			return nil
		},
	}

	flags = bindSongFlags(cmd)
	return cmd
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var flags *songFlags

	cmd := &cobra.Command{
		Use:   "edit <database-file> <item-code>",
		Short: "Change a song",
		Long:  `Change the fields given as flags on an existing song. The item code cannot be changed.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(args[0])
			if err != nil {
				return err
			}
			if err := session.Dispatch(editor.Select{Code: args[1]}); err != nil {
				return err
			}
			if err := session.Dispatch(editor.BeginEdit{}); err != nil {
				return err
			}
			if err := flags.apply(cmd, session, true); err != nil {
				return err
			}
			if err := session.Dispatch(editor.Accept{}); err != nil {
				return err
			}
			if err := session.Dispatch(editor.Save{}); err != nil {
				return fmt.Errorf("save database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[1])
			return nil
		},
	}

	flags = bindSongFlags(cmd, editor.FieldItemCode)
	return cmd
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <database-file> <item-code>",
		Short: "Delete a song",
		Long:  `Remove the song with the given item code from the database.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession(args[0])
			if err != nil {
				return err
			}
			if err := session.Dispatch(editor.Select{Code: args[1]}); err != nil {
				return err
			}
			song, _ := session.Catalog().Get(args[1])
			if err := session.Dispatch(editor.BeginDelete{}); err != nil {
				return err
			}
			if err := session.Dispatch(editor.Accept{}); err != nil {
				return err
			}
			if err := session.Dispatch(editor.Save{}); err != nil {
				return fmt.Errorf("save database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", song.Title, song.ItemCode)
			return nil
		},
	}
}
