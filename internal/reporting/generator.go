package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"lottery-tracker/internal/domain"
)

// Generator persists analysis documents to an output directory. Every run
// writes a fresh set of files named by ticket number and generation
// timestamp; earlier reports are never touched.
type Generator struct {
	outputDir string
}

// NewGenerator creates a report file generator.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// Write renders the JSON, Markdown and CSV documents for the analysis and
// returns the paths written.
func (g *Generator) Write(a *domain.Analysis) ([]string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := fmt.Sprintf("lottery_analysis_%s_%s", a.TicketNumber, a.GeneratedAt.Format("20060102_150405"))

	jsonDoc, err := RenderJSON(a)
	if err != nil {
		return nil, err
	}

	files := []struct {
		ext  string
		data []byte
	}{
		{".json", jsonDoc},
		{".md", []byte(RenderMarkdown(a))},
		{".csv", []byte(RenderCSV(a.Results))},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(g.outputDir, base+f.ext)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
