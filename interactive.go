package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"go.uber.org/zap"
)

// runInteractiveFinder lets the user pick circuit files under the current
// directory. A nil slice with a nil error means the user aborted.
func runInteractiveFinder(ext string, log *zap.SugaredLogger) ([]string, error) {
	ext = normalizeExt(ext)
	candidates, err := scanDirectory(".", ext, log)
	if err != nil {
		return nil, fmt.Errorf("error scanning for circuit files: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no %s files found to select from", ext)
	}

	idx, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select circuit files to count. Press Tab to multi-select, Enter to confirm."
			}
			return previewCircuit(candidates[i], h)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Println("Interactive selection aborted.")
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]string, len(idx))
	for i, index := range idx {
		selected[i] = candidates[index]
	}
	return selected, nil
}

// previewCircuit shows the first lines of a file in the finder's preview pane.
func previewCircuit(path string, maxLines int) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Path: %s\nError reading file: %v", path, err)
	}
	lines := strings.Split(string(data), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
