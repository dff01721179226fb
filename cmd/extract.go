package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/user/move-dataset-cli/clip"
	"github.com/user/move-dataset-cli/db"
	"github.com/user/move-dataset-cli/ffmpeg"
	"github.com/user/move-dataset-cli/framedata"
	"github.com/user/move-dataset-cli/session"
	"github.com/user/move-dataset-cli/tui/forms"
	"github.com/user/move-dataset-cli/tui/styles"
)

var (
	extractVideosDir string
	extractOutput    string
	extractFrameData string
	extractFPS       float64
	extractFramePad  float64
	extractExtraPre  float64
	extractExtraPost float64
	extractNoHistory bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <video-file>",
	Short: "Run the interactive move extractor",
	Long: `Run the interactive move-extraction session against a video in the
videos directory. You will be prompted for a character, then loop over
moves and timestamps; each timestamp produces one clip under the output
root. Type "done" at the move prompt to finish, or "changechar" to switch
characters.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath := filepath.Join(extractVideosDir, args[0])

		source, err := ffmpeg.Open(cmd.Context(), videoPath)
		if err != nil {
			return err
		}
		fmt.Println(styles.Header.Render("=== Move Extractor ==="))
		fmt.Println(styles.Info.Render(
			fmt.Sprintf("Loaded %s (%.2fs).", filepath.Base(videoPath), source.Duration())))

		store, err := framedata.Load(extractFrameData)
		if err != nil {
			if store == nil {
				return err
			}
			// Store was reset to empty; usable, but worth a warning.
			fmt.Println(styles.Warning.Render(fmt.Sprintf("Warning: %v", err)))
		}

		var recorder session.Recorder
		if !extractNoHistory {
			database, err := db.Open()
			if err != nil {
				fmt.Println(styles.Warning.Render(
					fmt.Sprintf("Warning: history disabled, could not open database: %v", err)))
			} else {
				defer database.Close()
				recorder = &historyRecorder{
					db:        database,
					sessionID: uuid.NewString(),
					videoPath: videoPath,
				}
			}
		}

		s := &session.Session{
			Prompter:  forms.Prompter{},
			Source:    source,
			Store:     store,
			StorePath: extractFrameData,
			Writer:    &clip.Writer{OutputRoot: extractOutput},
			Window: clip.Config{
				FPS:       extractFPS,
				FramePad:  extractFramePad,
				ExtraPre:  extractExtraPre,
				ExtraPost: extractExtraPost,
			},
			Recorder: recorder,
			Out:      os.Stdout,
		}
		return s.Run(cmd.Context())
	},
}

// historyRecorder adapts the sqlite store to the session's Recorder.
type historyRecorder struct {
	db        *sql.DB
	sessionID string
	videoPath string
}

func (r *historyRecorder) Record(e session.Extraction) error {
	_, err := db.InsertExtraction(r.db, db.Extraction{
		SessionID:        r.sessionID,
		VideoPath:        r.videoPath,
		Character:        e.Character,
		Move:             e.Move,
		TimestampSeconds: e.Timestamp,
		StartSeconds:     e.Start,
		EndSeconds:       e.End,
		FrameCount:       e.FrameCount,
		OutputPath:       e.OutputPath,
	})
	return err
}

func init() {
	extractCmd.Flags().StringVar(&extractVideosDir, "videos-dir", "videos", "Directory holding source videos")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "output", "Output root for extracted clips")
	extractCmd.Flags().StringVar(&extractFrameData, "frame-data", "frame_data.json", "Path to the frame-count knowledge base")
	extractCmd.Flags().Float64Var(&extractFPS, "fps", clip.DefaultFPS, "Reference frame rate for frame counts")
	extractCmd.Flags().Float64Var(&extractFramePad, "frame-pad", clip.DefaultFramePad, "Padding frames added on each side of a move")
	extractCmd.Flags().Float64Var(&extractExtraPre, "extra-pre", clip.DefaultExtraPre, "Extra seconds before the window")
	extractCmd.Flags().Float64Var(&extractExtraPost, "extra-post", clip.DefaultExtraPost, "Extra seconds after the window")
	extractCmd.Flags().BoolVar(&extractNoHistory, "no-history", false, "Do not record extractions in the history database")

	rootCmd.AddCommand(extractCmd)
}
