package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/user/move-dataset-cli/framedata"
	"github.com/user/move-dataset-cli/tui/styles"
)

var framesPath string

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Manage the frame-count knowledge base",
	Long:  `List, set, and remove per-move frame counts without running an extraction session.`,
}

var framesListCmd = &cobra.Command{
	Use:   "list [character]",
	Short: "List stored frame counts",
	Long:  `Display the stored frame counts as a table, optionally limited to one character.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadFrames()
		if err != nil {
			return err
		}

		characters := store.Characters()
		if len(args) == 1 {
			if _, ok := store[args[0]]; !ok {
				fmt.Printf("No stored moves for %q.\n", args[0])
				return nil
			}
			characters = []string{args[0]}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Character\tMove\tFrames")
		fmt.Fprintln(w, "---------\t----\t------")

		count := 0
		for _, character := range characters {
			for _, move := range store.Moves(character) {
				frames, _ := store.Lookup(character, move)
				fmt.Fprintf(w, "%s\t%s\t%d\n", character, move, frames)
				count++
			}
		}
		w.Flush()

		if count == 0 {
			fmt.Println("\nNo frame data stored yet.")
		} else {
			fmt.Printf("\n%d move(s) stored.\n", count)
		}
		return nil
	},
}

var framesSetCmd = &cobra.Command{
	Use:   "set <character> <move> <frames>",
	Short: "Set the frame count for a move",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, err := strconv.Atoi(args[2])
		if err != nil || frames <= 0 {
			return fmt.Errorf("frame count must be a positive integer, got %q", args[2])
		}

		store, err := loadFrames()
		if err != nil {
			return err
		}
		store.Set(args[0], args[1], frames)
		if err := framedata.Save(store, framesPath); err != nil {
			return err
		}

		fmt.Println(styles.Success.Render(
			fmt.Sprintf("Saved %s -> %s: %d frames.", args[0], args[1], frames)))
		return nil
	},
}

var framesRemoveCmd = &cobra.Command{
	Use:   "remove <character> <move>",
	Short: "Remove a stored frame count",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadFrames()
		if err != nil {
			return err
		}
		if !store.Remove(args[0], args[1]) {
			return fmt.Errorf("no entry for %s - %s", args[0], args[1])
		}
		if err := framedata.Save(store, framesPath); err != nil {
			return err
		}

		fmt.Println(styles.Success.Render(
			fmt.Sprintf("Removed %s - %s.", args[0], args[1])))
		return nil
	},
}

func loadFrames() (framedata.Store, error) {
	store, err := framedata.Load(framesPath)
	if err != nil {
		if store == nil {
			return nil, err
		}
		fmt.Println(styles.Warning.Render(fmt.Sprintf("Warning: %v", err)))
	}
	return store, nil
}

func init() {
	framesCmd.PersistentFlags().StringVar(&framesPath, "frame-data", "frame_data.json", "Path to the frame-count knowledge base")

	framesCmd.AddCommand(framesListCmd)
	framesCmd.AddCommand(framesSetCmd)
	framesCmd.AddCommand(framesRemoveCmd)
	rootCmd.AddCommand(framesCmd)
}
