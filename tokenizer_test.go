package main

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateToken(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"AND2 C B D", "AND2", true},
		{"  buf1\tA C  ", "BUF1", true},
		{"", "", false},
		{"   \t ", "", false},
		{"# comment line", "", false},
		{"   # indented comment", "", false},
		{"nand#2 a b", "NAND#2", true},
	}
	for _, tt := range tests {
		got, ok := gateToken(tt.line)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		assert.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestClassifyLine(t *testing.T) {
	c := NewClassifier(defaultVocabulary())
	tests := []struct {
		line string
		want lineKind
	}{
		{"MYBUFX a b", lineBuffer},
		{"XBUFZ a b", lineBuffer},
		{"NOTBUFFER a b", lineBuffer},
		{"buf a b", lineBuffer},
		{"INPUT A", lineIgnored},
		{"output d", lineIgnored},
		{"OUTPUTX d", lineCell},
		{"INPUTGATE a", lineCell},
		{"AND2 C B D", lineCell},
		{"WHATEVER", lineCell},
		{"# BUF a b", lineIgnored},
		{"", lineIgnored},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.classifyLine(tt.line), "line %q", tt.line)
	}
}

func TestCount_C499Scenario(t *testing.T) {
	c := NewClassifier(defaultVocabulary())
	input := "INPUT A\nINPUT B\nBUF1 A C\nAND2 C B D\n# comment line\n\nOUTPUT D\n"

	counts, err := c.Count(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Counts{Cells: 2, Buffers: 1}, counts)
}

func TestCount_CommentsAndBlanksChangeNothing(t *testing.T) {
	c := NewClassifier(defaultVocabulary())
	base := "AND2 a b\nBUF x y\n"

	want, err := c.Count(strings.NewReader(base))
	require.NoError(t, err)

	got, err := c.Count(strings.NewReader("\n# BUF\n   \n" + base + "  # AND2\n\t\n"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCount_BuffersNeverExceedCells(t *testing.T) {
	c := NewClassifier(defaultVocabulary())
	input := strings.Join([]string{
		"BUF a", "BUFFER b", "xbufz c", "INPUT a", "OUTPUT b", "NOT a b",
		"# BUF", "", "BUFINPUT q", "OUTPUTBUF z", "DFF q d",
	}, "\n")

	counts, err := c.Count(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 7, counts.Cells)
	assert.Equal(t, 5, counts.Buffers)
	assert.LessOrEqual(t, counts.Buffers, counts.Cells)
}

func TestCount_NoTrailingNewlineAndCRLF(t *testing.T) {
	c := NewClassifier(defaultVocabulary())
	counts, err := c.Count(strings.NewReader("INPUT a\r\nBUF a b\r\nAND2 a b"))
	require.NoError(t, err)
	assert.Equal(t, Counts{Cells: 2, Buffers: 1}, counts)
}

func TestCount_CROnlyLineEndings(t *testing.T) {
	c := NewClassifier(defaultVocabulary())
	counts, err := c.Count(strings.NewReader("INPUT a\rBUF1 a b\rAND2 a b\r"))
	require.NoError(t, err)
	assert.Equal(t, Counts{Cells: 2, Buffers: 1}, counts)

	counts, err = c.Count(strings.NewReader("INPUT a\r\rBUF1 a b\r\n# AND2\rOR2 a b\nNOT a"))
	require.NoError(t, err)
	assert.Equal(t, Counts{Cells: 3, Buffers: 1}, counts)
}

func TestScanTextLines(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("a\rb\r\nc\nd\r\re"))
	scanner.Split(scanTextLines)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"a", "b", "c", "d", "", "e"}, lines)
}

func TestScanTextLines_CRLFAcrossReads(t *testing.T) {
	// One byte per Read forces "\r" and "\n" into separate buffers.
	scanner := bufio.NewScanner(iotest.OneByteReader(strings.NewReader("BUF a\r\nAND2 b\r\n")))
	scanner.Split(scanTextLines)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"BUF a", "AND2 b"}, lines)
}

func TestCount_LineTooLong(t *testing.T) {
	c := NewClassifier(defaultVocabulary())
	long := "AND2 " + strings.Repeat("x", maxLineBytes+1)

	_, err := c.Count(strings.NewReader(long))
	assert.Error(t, err)
}

func TestNewClassifier_NormalizesVocabulary(t *testing.T) {
	c := NewClassifier(Vocabulary{
		BufferKeywords: []string{" inv ", ""},
		SpecialNodes:   []string{"clock"},
	})

	assert.Equal(t, lineBuffer, c.classifyLine("MYINV a b"))
	assert.Equal(t, lineIgnored, c.classifyLine("CLOCK clk"))
	assert.Equal(t, lineCell, c.classifyLine("BUF a b"))
	assert.Equal(t, lineCell, c.classifyLine("INPUT a"))
}

func TestClassifyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.ckt")
	require.NoError(t, os.WriteFile(path, []byte("INPUT a\nBUFFER a b\nNOR2 a b c\n"), 0644))

	counts, err := NewClassifier(defaultVocabulary()).ClassifyFile(path)
	require.NoError(t, err)
	assert.Equal(t, Counts{Cells: 2, Buffers: 1}, counts)
}

func TestClassifyFile_Unreadable(t *testing.T) {
	dir := t.TempDir()
	c := NewClassifier(defaultVocabulary())

	_, err := c.ClassifyFile(filepath.Join(dir, "gone.ckt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileUnreadable))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// A directory exists but cannot be read as lines.
	sub := filepath.Join(dir, "dir.ckt")
	require.NoError(t, os.Mkdir(sub, 0755))
	_, err = c.ClassifyFile(sub)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileUnreadable))
}
