// Package session drives the interactive move-extraction loop: pick a
// character, pick a move, then log timestamps until the operator moves on.
package session

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/user/move-dataset-cli/clip"
	"github.com/user/move-dataset-cli/framedata"
	"github.com/user/move-dataset-cli/pkg/timeutil"
	"github.com/user/move-dataset-cli/tui/styles"
)

// Sentinel tokens reserved at the move prompt.
const (
	TokenDone       = "done"
	TokenChangeChar = "changechar"
)

// Prompter asks the operator a question and returns the raw answer.
type Prompter interface {
	Input(title, description string) (string, error)
	Confirm(title, description string) (bool, error)
}

// VideoSource is the opened source video: a known duration plus the trim
// capability.
type VideoSource interface {
	clip.Trimmer
	Duration() float64
}

// Extraction describes one written clip for the history recorder.
type Extraction struct {
	Character  string
	Move       string
	Timestamp  float64
	Start      float64
	End        float64
	FrameCount int
	OutputPath string
}

// Recorder persists extraction records. A nil Recorder disables history.
type Recorder interface {
	Record(e Extraction) error
}

// Session holds the state of one interactive extraction run. Character and
// move stay fixed across the inner timestamp loop; only an explicit move
// re-prompt or the changechar token moves them.
type Session struct {
	Prompter  Prompter
	Source    VideoSource
	Store     framedata.Store
	StorePath string
	Writer    *clip.Writer
	Window    clip.Config
	Recorder  Recorder
	Out       io.Writer

	character string
	move      string
}

// Run executes the session until the operator enters the done token.
// Per-clip failures report and reprompt; only prompt-level errors (such as
// an aborted form) end the run early.
func (s *Session) Run(ctx context.Context) error {
	if err := s.promptCharacter(); err != nil {
		return err
	}

	for {
		move, err := s.Prompter.Input(
			fmt.Sprintf("Move for %s", s.character),
			fmt.Sprintf("Type %q when finished or %q to pick a new character.", TokenDone, TokenChangeChar),
		)
		if err != nil {
			return err
		}
		move = strings.TrimSpace(move)
		if move == "" {
			continue
		}

		switch strings.ToLower(move) {
		case TokenDone:
			fmt.Fprintln(s.Out, styles.Info.Render("Exiting move extractor."))
			return nil
		case TokenChangeChar:
			if err := s.promptCharacter(); err != nil {
				return err
			}
			continue
		}

		s.move = move
		fmt.Fprintln(s.Out, styles.Subtle.Render(
			fmt.Sprintf("Logging timestamps for %s - %s. Leave the timestamp empty to choose another move.", s.character, s.move)))

		if err := s.timestampLoop(ctx); err != nil {
			return err
		}
	}
}

// promptCharacter reprompts until a non-empty character name is given, then
// announces that character's known moves.
func (s *Session) promptCharacter() error {
	for {
		name, err := s.Prompter.Input("Character", "Name of the character the next moves belong to.")
		if err != nil {
			return err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			fmt.Fprintln(s.Out, styles.Warning.Render("Character name is required."))
			continue
		}
		s.character = name
		s.announceMoves()
		return nil
	}
}

func (s *Session) announceMoves() {
	moves := s.Store.Moves(s.character)
	if len(moves) == 0 {
		fmt.Fprintln(s.Out, styles.Subtle.Render(
			fmt.Sprintf("No stored moves yet for %s. Type a move name to add one.", s.character)))
		return
	}
	fmt.Fprintln(s.Out, styles.Subtle.Render(
		fmt.Sprintf("Known moves for %s: %s", s.character, strings.Join(moves, ", "))))
}

// timestampLoop logs clips for the current character/move until the
// operator enters an empty timestamp.
func (s *Session) timestampLoop(ctx context.Context) error {
	for {
		input, err := s.Prompter.Input(
			"Timestamp of move",
			"Seconds or mm:ss. Leave empty to choose a new move.",
		)
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			return nil
		}

		timestamp, err := timeutil.ParseTimeToSeconds(input)
		if err != nil {
			fmt.Fprintln(s.Out, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}
		if timestamp >= s.Source.Duration() {
			fmt.Fprintln(s.Out, styles.Error.Render("Timestamp is beyond video duration. Try again."))
			continue
		}

		frames, aborted, err := s.resolveFrameCount()
		if err != nil {
			return err
		}
		if aborted {
			fmt.Fprintln(s.Out, styles.Subtle.Render("Skipping this clip."))
			continue
		}

		win, err := clip.ComputeWindow(frames, timestamp, s.Source.Duration(), s.Window)
		if err != nil {
			fmt.Fprintln(s.Out, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}

		outPath, err := s.Writer.WriteClip(ctx, s.Source, s.character, s.move, timestamp, win)
		if err != nil {
			fmt.Fprintln(s.Out, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}
		fmt.Fprintln(s.Out, styles.Success.Render(
			fmt.Sprintf("Wrote %s (%.2fs)", outPath, win.Duration())))

		s.record(Extraction{
			Character:  s.character,
			Move:       s.move,
			Timestamp:  timestamp,
			Start:      win.Start,
			End:        win.End,
			FrameCount: frames,
			OutputPath: outPath,
		})
	}
}

// resolveFrameCount looks up the frame count for the current pair,
// backfilling from the operator on a miss. The in-memory store is always
// updated so the pair is never prompted for twice in one run; writing the
// store to disk is a per-entry opt-in. aborted is true when the operator
// left the prompt empty to skip the clip.
func (s *Session) resolveFrameCount() (frames int, aborted bool, err error) {
	if frames, ok := s.Store.Lookup(s.character, s.move); ok {
		return frames, false, nil
	}

	for {
		input, err := s.Prompter.Input(
			fmt.Sprintf("Frame count for %s - %s", s.character, s.move),
			"Whole frames at 60fps. Leave empty to skip this clip.",
		)
		if err != nil {
			return 0, false, err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			return 0, true, nil
		}

		n, convErr := strconv.Atoi(input)
		if convErr != nil || n <= 0 {
			fmt.Fprintln(s.Out, styles.Warning.Render("Please enter a positive integer."))
			continue
		}

		s.Store.Set(s.character, s.move, n)

		persist, err := s.Prompter.Confirm(
			"Save frame data now?",
			fmt.Sprintf("Write the updated store to %s.", s.StorePath),
		)
		if err != nil {
			return 0, false, err
		}
		if persist {
			if saveErr := framedata.Save(s.Store, s.StorePath); saveErr != nil {
				fmt.Fprintln(s.Out, styles.Warning.Render(
					fmt.Sprintf("Warning: %v. Continuing with the in-memory value.", saveErr)))
			} else {
				fmt.Fprintln(s.Out, styles.Success.Render(
					fmt.Sprintf("Saved %s -> %s: %d frames.", s.character, s.move, n)))
			}
		}
		return n, false, nil
	}
}

func (s *Session) record(e Extraction) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.Record(e); err != nil {
		fmt.Fprintln(s.Out, styles.Warning.Render(
			fmt.Sprintf("Warning: could not record history: %v", err)))
	}
}
