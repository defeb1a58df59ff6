package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/user/songdb/catalog"
)

// songJSON is the --json shape of a song.
type songJSON struct {
	Title       string  `json:"title"`
	ItemCode    string  `json:"item_code"`
	Description string  `json:"description"`
	Artist      string  `json:"artist"`
	Album       string  `json:"album"`
	Price       float64 `json:"price"`
}

func toSongJSON(songs []catalog.Song) []songJSON {
	out := make([]songJSON, 0, len(songs))
	for _, s := range songs {
		out = append(out, songJSON{
			Title:       s.Title,
			ItemCode:    s.ItemCode,
			Description: s.Description,
			Artist:      s.Artist,
			Album:       s.Album,
			Price:       s.Price,
		})
	}
	return out
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
