package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/move-dataset-cli/clip"
	"github.com/user/move-dataset-cli/framedata"
)

// scriptedPrompter replays queued answers and fails the test on any
// unexpected prompt.
type scriptedPrompter struct {
	t        *testing.T
	inputs   []string
	confirms []bool
	titles   []string
}

func (p *scriptedPrompter) Input(title, _ string) (string, error) {
	p.t.Helper()
	if len(p.inputs) == 0 {
		p.t.Fatalf("unexpected Input prompt %q", title)
	}
	p.titles = append(p.titles, title)
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	return v, nil
}

func (p *scriptedPrompter) Confirm(title, _ string) (bool, error) {
	p.t.Helper()
	if len(p.confirms) == 0 {
		p.t.Fatalf("unexpected Confirm prompt %q", title)
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *scriptedPrompter) assertDrained() {
	p.t.Helper()
	if len(p.inputs) != 0 || len(p.confirms) != 0 {
		p.t.Fatalf("unconsumed prompt answers: inputs=%v confirms=%v", p.inputs, p.confirms)
	}
}

type trimCall struct {
	start, end float64
	outputPath string
}

// fakeSource is a 600s video whose trim writes a tiny file, or fails.
type fakeSource struct {
	duration float64
	err      error
	trims    []trimCall
}

func (f *fakeSource) Duration() float64 { return f.duration }

func (f *fakeSource) Trim(_ context.Context, start, end float64, outputPath string) error {
	f.trims = append(f.trims, trimCall{start, end, outputPath})
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outputPath, []byte("clip"), 0o644)
}

type memRecorder struct {
	records []Extraction
}

func (r *memRecorder) Record(e Extraction) error {
	r.records = append(r.records, e)
	return nil
}

func newTestSession(t *testing.T, prompter *scriptedPrompter, source *fakeSource, store framedata.Store) (*Session, *memRecorder, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "frame_data.json")
	if err := framedata.Save(store, storePath); err != nil {
		t.Fatal(err)
	}
	rec := &memRecorder{}
	s := &Session{
		Prompter:  prompter,
		Source:    source,
		Store:     store,
		StorePath: storePath,
		Writer:    &clip.Writer{OutputRoot: filepath.Join(dir, "output")},
		Window:    clip.DefaultConfig(),
		Recorder:  rec,
		Out:       &bytes.Buffer{},
	}
	return s, rec, storePath
}

func TestRun_SingleClipThenDone(t *testing.T) {
	prompter := &scriptedPrompter{
		t:      t,
		inputs: []string{"Mario", "Up Smash", "3:44", "", "done"},
	}
	source := &fakeSource{duration: 600}
	store := framedata.Store{"Mario": {"Up Smash": 40}}
	s, rec, _ := newTestSession(t, prompter, source, store)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	prompter.assertDrained()

	if len(source.trims) != 1 {
		t.Fatalf("trim called %d times, want exactly 1", len(source.trims))
	}
	wantName := "Mario_UpSmash_00344_001.mp4"
	if filepath.Base(source.trims[0].outputPath) != wantName {
		t.Errorf("clip name = %q, want %q", filepath.Base(source.trims[0].outputPath), wantName)
	}
	if len(rec.records) != 1 {
		t.Fatalf("history records = %d, want 1", len(rec.records))
	}
	got := rec.records[0]
	if got.Character != "Mario" || got.Move != "Up Smash" || got.Timestamp != 224.0 || got.FrameCount != 40 {
		t.Errorf("history record = %+v", got)
	}
}

func TestRun_ChangeCharacter(t *testing.T) {
	prompter := &scriptedPrompter{
		t:      t,
		inputs: []string{"Mario", "changechar", "Donkey Kong", "Forward Smash", "4:12", "", "done"},
	}
	source := &fakeSource{duration: 600}
	store := framedata.Store{"Donkey Kong": {"Forward Smash": 55}}
	s, rec, _ := newTestSession(t, prompter, source, store)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	prompter.assertDrained()

	if len(rec.records) != 1 {
		t.Fatalf("history records = %d, want 1", len(rec.records))
	}
	if rec.records[0].Character != "Donkey Kong" {
		t.Errorf("clip recorded for %q, want Donkey Kong", rec.records[0].Character)
	}
	wantName := "DonkeyKong_ForwardSmash_00412_001.mp4"
	if filepath.Base(rec.records[0].OutputPath) != wantName {
		t.Errorf("clip name = %q, want %q", filepath.Base(rec.records[0].OutputPath), wantName)
	}
}

func TestRun_EmptyNamesReprompt(t *testing.T) {
	prompter := &scriptedPrompter{
		t:      t,
		inputs: []string{"", "Mario", "", "done"},
	}
	source := &fakeSource{duration: 600}
	s, _, _ := newTestSession(t, prompter, source, framedata.Store{})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	prompter.assertDrained()
	if len(source.trims) != 0 {
		t.Errorf("no clips expected, trim called %d times", len(source.trims))
	}
}

func TestRun_BadTimestampsReprompt(t *testing.T) {
	prompter := &scriptedPrompter{
		t: t,
		// parse failure, then past-the-end, then a good one
		inputs: []string{"Mario", "Up Smash", "4:ab", "700", "3:44", "", "done"},
	}
	source := &fakeSource{duration: 600}
	store := framedata.Store{"Mario": {"Up Smash": 40}}
	s, rec, _ := newTestSession(t, prompter, source, store)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	prompter.assertDrained()

	if len(source.trims) != 1 {
		t.Errorf("trim called %d times, want 1 (bad timestamps must not extract)", len(source.trims))
	}
	out := s.Out.(*bytes.Buffer).String()
	if !strings.Contains(out, "beyond video duration") {
		t.Errorf("out-of-range timestamp not reported, output: %q", out)
	}
	if len(rec.records) != 1 {
		t.Errorf("history records = %d, want 1", len(rec.records))
	}
}

func TestRun_BackfillWithoutPersistence(t *testing.T) {
	prompter := &scriptedPrompter{
		t: t,
		// frame-count prompt rejects junk, accepts 55; persistence declined;
		// the second timestamp must not re-prompt for frames.
		inputs:   []string{"Donkey Kong", "Forward Smash", "4:12", "abc", "55", "4:20", "", "done"},
		confirms: []bool{false},
	}
	source := &fakeSource{duration: 600}
	s, rec, storePath := newTestSession(t, prompter, source, framedata.Store{})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	prompter.assertDrained()

	if len(source.trims) != 2 {
		t.Fatalf("trim called %d times, want 2", len(source.trims))
	}
	if frames, ok := s.Store.Lookup("Donkey Kong", "Forward Smash"); !ok || frames != 55 {
		t.Errorf("in-memory store = (%d, %v), want (55, true)", frames, ok)
	}

	// Persistence was declined, so the file on disk stays empty.
	onDisk, err := framedata.Load(storePath)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(onDisk) != 0 {
		t.Errorf("store file was written despite declined persistence: %v", onDisk)
	}
	if len(rec.records) != 2 || rec.records[0].FrameCount != 55 {
		t.Errorf("history records = %+v", rec.records)
	}
}

func TestRun_BackfillPersisted(t *testing.T) {
	prompter := &scriptedPrompter{
		t:        t,
		inputs:   []string{"Donkey Kong", "Forward Smash", "4:12", "55", "", "done"},
		confirms: []bool{true},
	}
	source := &fakeSource{duration: 600}
	s, _, storePath := newTestSession(t, prompter, source, framedata.Store{})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	prompter.assertDrained()

	onDisk, err := framedata.Load(storePath)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if frames, ok := onDisk.Lookup("Donkey Kong", "Forward Smash"); !ok || frames != 55 {
		t.Errorf("persisted store = (%d, %v), want (55, true)", frames, ok)
	}
}

func TestRun_BackfillAbortSkipsClip(t *testing.T) {
	prompter := &scriptedPrompter{
		t: t,
		// empty frame count skips the clip, then back at the timestamp prompt
		inputs: []string{"Donkey Kong", "Forward Smash", "4:12", "", "", "done"},
	}
	source := &fakeSource{duration: 600}
	s, rec, _ := newTestSession(t, prompter, source, framedata.Store{})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	prompter.assertDrained()

	if len(source.trims) != 0 {
		t.Errorf("trim called %d times, want 0 after aborted backfill", len(source.trims))
	}
	if len(rec.records) != 0 {
		t.Errorf("history records = %d, want 0", len(rec.records))
	}
	if _, ok := s.Store.Lookup("Donkey Kong", "Forward Smash"); ok {
		t.Error("aborted backfill must not create a store entry")
	}
}

func TestRun_TrimFailureKeepsSessionAlive(t *testing.T) {
	prompter := &scriptedPrompter{
		t:      t,
		inputs: []string{"Mario", "Up Smash", "3:44", "", "done"},
	}
	source := &fakeSource{duration: 600, err: errors.New("encoder exploded")}
	store := framedata.Store{"Mario": {"Up Smash": 40}}
	s, rec, _ := newTestSession(t, prompter, source, store)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v, extraction failures must not end the session", err)
	}
	prompter.assertDrained()

	if len(rec.records) != 0 {
		t.Errorf("failed extraction recorded to history: %+v", rec.records)
	}
	out := s.Out.(*bytes.Buffer).String()
	if !strings.Contains(out, "encoder exploded") {
		t.Errorf("extraction failure not reported, output: %q", out)
	}
}
