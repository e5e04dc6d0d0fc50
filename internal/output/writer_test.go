package output

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-scraper/internal/scraper"
)

func sampleResult() *scraper.Result {
	return &scraper.Result{
		CompanyName: "acme-corp",
		Timestamp:   "20260830_153012",
		SourceURL:   "https://www.linkedin.com/company/acme-corp/posts/",
		Posts: []scraper.Post{
			{
				Text:         "Launching our new product line today!",
				Author:       "Acme Corp",
				Timestamp:    "2d",
				Likes:        "87",
				Comments:     "12",
				Shares:       "3",
				Images:       []string{"https://media.example.com/launch.jpg"},
				Videos:       []string{},
				CommentTexts: []string{"Congrats!", "Amazing"},
			},
			{
				Text:         "",
				Likes:        "0",
				Comments:     "0",
				Shares:       "0",
				Images:       []string{},
				Videos:       []string{},
				CommentTexts: []string{},
			},
		},
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 30, 12, 0, time.UTC)
	assert.Equal(t, "acme-corp_posts_20260830_153012.json", Filename("acme-corp", at))
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	original := sampleResult()
	path, err := w.Write(original)
	require.NoError(t, err)

	loaded, err := Read(path)
	require.NoError(t, err)

	//serialization is lossless for the defined schema
	assert.Equal(t, original, loaded)
	assert.Len(t, loaded.Posts, 2)
}

func TestWrite_FilenamePattern(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	path, err := w.Write(sampleResult())
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^acme-corp_posts_\d{8}_\d{6}\.json$`)
	assert.Regexp(t, pattern, filepath.Base(path))
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	_, err := w.Write(sampleResult())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the renamed output file may remain")
}

func TestWrite_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	w := NewWriter(dir)

	path, err := w.Write(sampleResult())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWrite_UnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	w := NewWriter(filepath.Join(dir, "out"))
	_, err := w.Write(sampleResult())
	assert.Error(t, err)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
