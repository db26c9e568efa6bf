package main

import "errors"

// Sentinel causes carried by skipped outcomes. Check them with errors.Is.
var (
	ErrFileMissing    = errors.New("file not found")
	ErrFileUnreadable = errors.New("file unreadable")
)

// InputFile is one entry of the configured file list.
type InputFile struct {
	Index int    // Position in the configured list, offset by the start index
	Name  string // Name exactly as configured
}

// Counts holds the two counters accumulated for one file.
type Counts struct {
	Cells   int
	Buffers int
}

// FileSummary is one row of the result table.
type FileSummary struct {
	Index   int
	Case    string // File name without its extension
	Cells   int
	Buffers int
}

// FileOutcome is the result of processing one configured file: either a summary
// or the reason it was skipped.
type FileOutcome struct {
	Input   InputFile
	Summary *FileSummary
	Err     error // Wraps ErrFileMissing or ErrFileUnreadable when Summary is nil
}

// ResultTable is the ordered set of rows produced by one run.
type ResultTable struct {
	Rows []FileSummary
}

// tableHeader is the fixed column order for every rendering of a ResultTable.
var tableHeader = []string{"Index", "Case", "#Cell", "#Buffer"}

// Vocabulary configures how gate tokens are classified.
type Vocabulary struct {
	BufferKeywords []string `yaml:"buffer_keywords"` // Substring match
	SpecialNodes   []string `yaml:"special_nodes"`   // Exact match, never counted
}

// Config is the immutable input to run.
type Config struct {
	Files      []string
	StartIndex int
	OutputPath string
	Vocabulary Vocabulary
	PDFPath    string
	Clipboard  bool
}

// Defaults used when neither a config file, the environment, nor flags say otherwise.
var (
	defaultFiles          = []string{"c499.ckt", "c1355.ckt", "c2670.ckt"}
	defaultBufferKeywords = []string{"BUF", "BUFFER"}
	defaultSpecialNodes   = []string{"INPUT", "OUTPUT"}
)

const (
	defaultOutputPath = "parsed_results.csv"
	defaultStartIndex = 1
	defaultExtension  = ".ckt"
)

// defaultVocabulary returns a fresh copy of the built-in keyword lists.
func defaultVocabulary() Vocabulary {
	return Vocabulary{
		BufferKeywords: append([]string(nil), defaultBufferKeywords...),
		SpecialNodes:   append([]string(nil), defaultSpecialNodes...),
	}
}
