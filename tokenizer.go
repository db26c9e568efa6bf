package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single line; longer lines make the file unreadable.
const maxLineBytes = 16 << 20

// lineKind is the classification of a single input line.
type lineKind int

const (
	lineIgnored lineKind = iota // blank, comment, or special node
	lineCell
	lineBuffer // a cell whose gate type contains a buffer keyword
)

// Classifier counts cells and buffers according to a Vocabulary.
type Classifier struct {
	bufferKeywords []string
	specialNodes   map[string]struct{}
}

// NewClassifier builds a Classifier. Keywords are compared against uppercased
// gate tokens, so they are uppercased here too.
func NewClassifier(vocab Vocabulary) *Classifier {
	c := &Classifier{
		bufferKeywords: normalizeKeywords(vocab.BufferKeywords),
		specialNodes:   make(map[string]struct{}, len(vocab.SpecialNodes)),
	}
	for _, node := range normalizeKeywords(vocab.SpecialNodes) {
		c.specialNodes[node] = struct{}{}
	}
	return c
}

// gateToken extracts the uppercased gate type from a line. It reports false for
// blank lines and comments.
func gateToken(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", false
	}
	return strings.ToUpper(tokens[0]), true
}

// classifyLine decides how a single line contributes to the counters.
// Special nodes match exactly; buffer keywords match as substrings.
func (c *Classifier) classifyLine(line string) lineKind {
	gate, ok := gateToken(line)
	if !ok {
		return lineIgnored
	}
	if _, special := c.specialNodes[gate]; special {
		return lineIgnored
	}
	for _, kw := range c.bufferKeywords {
		if strings.Contains(gate, kw) {
			return lineBuffer
		}
	}
	return lineCell
}

// scanTextLines is a bufio.SplitFunc ending lines at "\n", "\r\n" or a lone "\r".
func scanTextLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Count classifies every line read from r.
func (c *Classifier) Count(r io.Reader) (Counts, error) {
	var counts Counts
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(scanTextLines)
	for scanner.Scan() {
		switch c.classifyLine(scanner.Text()) {
		case lineBuffer:
			counts.Buffers++
			counts.Cells++
		case lineCell:
			counts.Cells++
		}
	}
	if err := scanner.Err(); err != nil {
		return Counts{}, err
	}
	return counts, nil
}

// ClassifyFile opens path, counts it, and releases the handle before returning.
// Any open or read failure is reported as ErrFileUnreadable.
func (c *Classifier) ClassifyFile(path string) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	counts, err := c.Count(f)
	if err != nil {
		return Counts{}, fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}
	return counts, nil
}
