package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/move-dataset-cli/ffmpeg"
	"github.com/user/move-dataset-cli/pkg/timeutil"
	"github.com/user/move-dataset-cli/tui/styles"
)

var (
	trimVideosDir string
	trimOutput    string
)

var trimCmd = &cobra.Command{
	Use:   "trim <video-file> <start> <end>",
	Short: "Manually trim a clip out of a video",
	Long: `Cut [start, end] out of a video in the videos directory and write it to
the output root as <name>_trimmed<ext>. Times accept seconds or mm:ss and
are truncated to whole seconds.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath := filepath.Join(trimVideosDir, args[0])

		startSecs, err := timeutil.ParseTimeToSeconds(args[1])
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
		endSecs, err := timeutil.ParseTimeToSeconds(args[2])
		if err != nil {
			return fmt.Errorf("invalid end time: %w", err)
		}
		start := float64(int(startSecs))
		end := float64(int(endSecs))

		source, err := ffmpeg.Open(cmd.Context(), videoPath)
		if err != nil {
			return err
		}
		if start >= source.Duration() {
			return fmt.Errorf("start time (%s) is beyond video duration (%.2fs)",
				timeutil.FormatTime(start), source.Duration())
		}
		if end <= start {
			return fmt.Errorf("end time must be greater than start time")
		}
		if end > source.Duration() {
			end = source.Duration()
		}

		if err := os.MkdirAll(trimOutput, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		base := filepath.Base(videoPath)
		ext := filepath.Ext(base)
		name := strings.TrimSuffix(base, ext)
		outPath := filepath.Join(trimOutput, name+"_trimmed"+ext)

		fmt.Println(styles.Info.Render(fmt.Sprintf("Trimming %s (%s - %s)...",
			base, timeutil.FormatTime(start), timeutil.FormatTime(end))))
		if err := source.Trim(cmd.Context(), start, end, outPath); err != nil {
			os.Remove(outPath)
			return err
		}

		fmt.Println(styles.Success.Render(fmt.Sprintf("Trimmed video saved at: %s", outPath)))
		return nil
	},
}

func init() {
	trimCmd.Flags().StringVar(&trimVideosDir, "videos-dir", "videos", "Directory holding source videos")
	trimCmd.Flags().StringVarP(&trimOutput, "output", "o", "output", "Output directory for the trimmed file")

	rootCmd.AddCommand(trimCmd)
}
