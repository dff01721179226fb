package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/user/move-dataset-cli/db"
	"github.com/user/move-dataset-cli/pkg/timeutil"
)

var (
	historyCharacter string
	historyMove      string
	historyLimit     int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past extractions",
	Long:  `Display recorded extractions as a table, newest first, optionally filtered by character and move.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		extractions, err := db.SelectExtractions(database, historyCharacter, historyMove, historyLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWhen\tCharacter\tMove\tTimestamp\tWindow\tClip")
		fmt.Fprintln(w, "--\t----\t---------\t----\t---------\t------\t----")

		for _, e := range extractions {
			window := fmt.Sprintf("%s - %s",
				timeutil.FormatTime(e.StartSeconds), timeutil.FormatTime(e.EndSeconds))
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID,
				e.CreatedAt.Format("2006-01-02 15:04"),
				e.Character,
				e.Move,
				timeutil.FormatTime(e.TimestampSeconds),
				window,
				filepath.Base(e.OutputPath),
			)
		}
		w.Flush()

		if len(extractions) == 0 {
			fmt.Println("\nNo extractions recorded.")
		} else {
			fmt.Printf("\n%d extraction(s) found.\n", len(extractions))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyCharacter, "character", "c", "", "Filter by character name")
	historyCmd.Flags().StringVarP(&historyMove, "move", "m", "", "Filter by move name")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum rows to show (0 for all)")

	rootCmd.AddCommand(historyCmd)
}
