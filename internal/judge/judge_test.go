package judge

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kzhou57/vizqa/internal/profile"
	"github.com/kzhou57/vizqa/internal/qaset"
)

type fakeVision struct {
	failOn   string
	prompts  []string
	images   []string
	verdicts map[string]string
}

func (f *fakeVision) ChatWithImage(ctx context.Context, model, promptText, imageDataURL string) (string, error) {
	f.prompts = append(f.prompts, promptText)
	f.images = append(f.images, imageDataURL)
	if f.failOn != "" && strings.Contains(imageDataURL, f.failOn) {
		return "", errors.New("rate limited")
	}
	return "verdict text", nil
}

func encodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func writeImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"-bytes"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestListImages_SortedAndFiltered(t *testing.T) {
	dir := writeImages(t, "b.png", "a.jpg", "notes.txt", "d.jpeg")
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := ListImages(dir)
	if err != nil {
		t.Fatalf("list images: %v", err)
	}
	want := []string{"a.jpg", "b.png", "d.jpeg"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestEncodeImage_DataURL(t *testing.T) {
	dir := writeImages(t, "chart.png", "photo.jpg")

	png, err := EncodeImage(filepath.Join(dir, "chart.png"))
	if err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if !strings.HasPrefix(png, "data:image/png;base64,") {
		t.Errorf("png data URL = %q", png)
	}

	jpg, err := EncodeImage(filepath.Join(dir, "photo.jpg"))
	if err != nil {
		t.Fatalf("encode jpg: %v", err)
	}
	if !strings.HasPrefix(jpg, "data:image/jpeg;base64,") {
		t.Errorf("jpg data URL = %q", jpg)
	}
}

func TestJudgeAll_OneVerdictPerImage(t *testing.T) {
	dir := writeImages(t, "chart_2.png", "chart_1.png")
	vision := &fakeVision{}
	j := New(vision, "test-judge")

	sample := profile.Sample{Columns: []string{"state"}, Rows: [][]string{{"Texas"}}}
	pairs := []qaset.QAPair{{Question: "Which state?", Answer: "Texas"}}

	verdicts, err := j.JudgeAll(context.Background(), dir, sample, pairs)
	if err != nil {
		t.Fatalf("judge all: %v", err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("verdicts = %d, want 2", len(verdicts))
	}
	if verdicts[0].Image != "chart_1.png" || verdicts[1].Image != "chart_2.png" {
		t.Errorf("verdicts out of order: %s, %s", verdicts[0].Image, verdicts[1].Image)
	}
	for _, v := range verdicts {
		if v.Failed() {
			t.Errorf("verdict for %s unexpectedly failed", v.Image)
		}
	}
	// Same prompt reused for every image.
	if vision.prompts[0] != vision.prompts[1] {
		t.Error("judge prompt should be identical across images")
	}
	if !strings.Contains(vision.prompts[0], "Q: Which state?") {
		t.Errorf("prompt missing QA block: %q", vision.prompts[0])
	}
}

func TestJudgeAll_FailureBecomesMarkedVerdict(t *testing.T) {
	dir := writeImages(t, "a.png", "b.png")
	// a.png's bytes are "a.png-bytes"; its base64 form is unique to it.
	vision := &fakeVision{failOn: encodeBase64("a.png-bytes")}
	j := New(vision, "test-judge")

	verdicts, err := j.JudgeAll(context.Background(), dir, profile.Sample{}, nil)
	if err != nil {
		t.Fatalf("judge all: %v", err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("verdicts = %d, want 2 (failure must not abort the sweep)", len(verdicts))
	}
	if !verdicts[0].Failed() {
		t.Errorf("verdict for a.png should be marked failed: %q", verdicts[0].Text)
	}
	if verdicts[1].Failed() {
		t.Errorf("verdict for b.png should have succeeded: %q", verdicts[1].Text)
	}
}

func TestJudgeAll_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	j := New(&fakeVision{}, "test-judge")

	verdicts, err := j.JudgeAll(context.Background(), dir, profile.Sample{}, nil)
	if err != nil {
		t.Fatalf("judge all: %v", err)
	}
	if verdicts != nil {
		t.Errorf("verdicts = %v, want nil for empty dir", verdicts)
	}
}
