package artifacts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

const htmlFileName = "dialogue_output.html"

// RenderHTML converts a finalized run into a standalone HTML document. The
// dialogue body is built as Markdown and converted with goldmark so that the
// page inherits normal paragraph and emphasis handling.
func RenderHTML(run *types.PipelineRun) (string, error) {
	if run == nil || run.Dialogue == nil || len(run.Dialogue.Utterances) == 0 {
		return "", &WriteError{Artifact: "html", Message: "no dialogue to render"}
	}

	var md strings.Builder
	md.WriteString("# Processed Discussion\n\n")
	if run.Score != nil && !run.Score.Unparsed {
		fmt.Fprintf(&md, "**Quality score:** %d/10\n\n", run.Score.Score)
	}
	for _, u := range run.Dialogue.Utterances {
		fmt.Fprintf(&md, "**%s:** %s\n\n", u.Speaker, u.Line)
	}

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &body); err != nil {
		return "", &WriteError{Artifact: "html", Message: "markdown conversion failed", Cause: err}
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>Processed Discussion</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// SaveHTML renders the run to HTML and writes it next to the dialogue file.
func (s *Store) SaveHTML(run *types.PipelineRun) (string, error) {
	html, err := RenderHTML(run)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", &WriteError{Artifact: "html", Message: "failed to create output directory", Cause: err}
	}
	path := filepath.Join(s.OutputDir, htmlFileName)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", &WriteError{Artifact: "html", Message: "failed to write html file", Cause: err}
	}
	return path, nil
}
