package output

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-linkedin-scraper/internal/scraper"
)

// TimestampFormat produces the {YYYYMMDD}_{HHMMSS} part of output filenames.
const TimestampFormat = "20060102_150405"

// Writer serializes scrape results into one JSON document per company page.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Filename returns the output name for a company at a given time, e.g.
// acme-corp_posts_20260830_153012.json.
func Filename(companyName string, at time.Time) string {
	return fmt.Sprintf("%s_posts_%s.json", companyName, at.Format(TimestampFormat))
}

// Write serializes the result document and writes it atomically: the JSON is
// staged in a temp file in the target directory, then renamed into place so a
// crashed run never leaves a half-written file behind.
func (w *Writer) Write(result *scraper.Result) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	finalPath := filepath.Join(w.outputDir, Filename(result.CompanyName, time.Now()))

	tmp, err := os.CreateTemp(w.outputDir, ".posts-*.json.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to rename output file: %w", err)
	}

	log.Printf("📁 Results saved to %s", finalPath)
	return finalPath, nil
}

// Read loads a previously written result document. Mostly useful for tests
// and downstream tooling.
func Read(path string) (*scraper.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result := &scraper.Result{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse result file: %w", err)
	}
	return result, nil
}
