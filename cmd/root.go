package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/move-dataset-cli/deps"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "move-dataset-cli",
	Short: "A CLI tool for building fighting-game move clip datasets",
	Long: `move-dataset-cli builds a labeled video-clip dataset of fighting-game
moves. Point it at a source video, name a character and a move, and log
timestamps; each timestamp becomes a tightly windowed clip filed under
output/<Character>/<Move>/ with a deterministic, accumulating filename.

Features:
  - Interactive move extractor with a persistent frame-count knowledge base
  - Window computation from per-move frame counts at 60fps
  - Manual trim mode for one-off cuts
  - Extraction history stored in SQLite`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("move-dataset-cli version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (ffmpeg, ffprobe) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckFfmpeg(); err != nil {
			fmt.Println("✗ ffmpeg: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffmpeg: OK")
		}

		if err := deps.CheckFfprobe(); err != nil {
			fmt.Println("✗ ffprobe: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffprobe: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
