// Package report renders the outcome of a renumber run as JSON.
package report

import (
	"fmt"
	"io"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/renumber/internal/renamer"
)

// Document builds the generic JSON value for a run over root. runErr is
// recorded under "error" so a partial run still reports what it changed.
func Document(root string, res renamer.Result, runErr error) map[string]any {
	renames := make([]any, 0, len(res.Renames))
	for _, r := range res.Renames {
		renames = append(renames, map[string]any{
			"category": r.Category,
			"seq":      int64(r.Seq),
			"from":     r.From,
			"to":       r.To,
		})
	}
	doc := map[string]any{
		"root":       root,
		"categories": int64(res.Categories),
		"files":      int64(res.Files),
		"renames":    renames,
	}
	if runErr != nil {
		doc["error"] = runErr.Error()
	}
	return doc
}

// Write encodes the run as indented JSON with sorted keys, followed by a newline.
func Write(w io.Writer, root string, res renamer.Result, runErr error) error {
	if err := oj.Write(w, Document(root, res, runErr), &ojg.Options{Indent: 2, Sort: true}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
