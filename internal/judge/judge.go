// Package judge runs the multi-modal verification stage: every chart
// image rendered by the pipeline is shown to a vision model together
// with the dataset sample and the generated QA pairs, and the model's
// free-text assessment is collected per image. A judge call failing is
// itself a finding, so failures become marked verdicts rather than
// aborting the sweep.
package judge

// #region imports
import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/kzhou57/vizqa/internal/profile"
	"github.com/kzhou57/vizqa/internal/prompt"
	"github.com/kzhou57/vizqa/internal/qaset"
)

// #endregion

// #region types

// VisionClient abstracts the multi-modal chat service.
type VisionClient interface {
	ChatWithImage(ctx context.Context, model, promptText, imageDataURL string) (string, error)
}

// Verdict is one judge assessment, keyed by the image file name.
type Verdict struct {
	Image string
	Text  string
}

// Failed reports whether the verdict marks a judge call failure rather
// than a model assessment.
func (v Verdict) Failed() bool {
	return strings.HasPrefix(v.Text, failureMarker)
}

const failureMarker = "JUDGE CALL FAILED: "

// Judge drives the verification sweep over a directory of chart images.
type Judge struct {
	client VisionClient
	model  string
}

// New wires a judge around a vision-capable client.
func New(client VisionClient, model string) *Judge {
	return &Judge{client: client, model: model}
}

// #endregion types

// #region sweep

// JudgeAll assesses every chart image in imageDir, in file-name order.
// Returns an error only when the directory cannot be listed; per-image
// failures become marked verdicts.
func (j *Judge) JudgeAll(ctx context.Context, imageDir string, sample profile.Sample, pairs []qaset.QAPair) ([]Verdict, error) {
	images, err := ListImages(imageDir)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		log.Printf("[JUDGE] no chart images found in %s", imageDir)
		return nil, nil
	}

	promptText := prompt.Judge(sample.Markdown(), qaset.Block(pairs))
	bar := progressbar.Default(int64(len(images)), "judging charts")

	verdicts := make([]Verdict, 0, len(images))
	for _, name := range images {
		verdicts = append(verdicts, j.judgeOne(ctx, filepath.Join(imageDir, name), name, promptText))
		bar.Add(1)
	}
	return verdicts, nil
}

func (j *Judge) judgeOne(ctx context.Context, path, name, promptText string) Verdict {
	dataURL, err := EncodeImage(path)
	if err != nil {
		log.Printf("[JUDGE] %s: %v", name, err)
		return Verdict{Image: name, Text: failureMarker + err.Error()}
	}

	text, err := j.client.ChatWithImage(ctx, j.model, promptText, dataURL)
	if err != nil {
		log.Printf("[JUDGE] %s: %v", name, err)
		return Verdict{Image: name, Text: failureMarker + err.Error()}
	}
	return Verdict{Image: name, Text: text}
}

// #endregion sweep

// #region images

// ListImages returns the chart image file names in dir, sorted
// lexicographically. Only .jpg, .jpeg, and .png files count;
// subdirectories and other files are ignored.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// EncodeImage reads an image file and returns it as a base64 data URL
// suitable for an image_url content block.
func EncodeImage(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mime := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw)), nil
}

// #endregion images
