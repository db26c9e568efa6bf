package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const vocabularyFileName = "gates.yml"

var errVocabularyNotFound = errors.New(vocabularyFileName + " not found in standard config locations")

// findVocabularyFile looks for gates.yml in $HOME/.config/cellcount, then the
// current directory.
func findVocabularyFile() (string, error) {
	configPaths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, ".config", "cellcount"))
	}
	configPaths = append(configPaths, ".")

	for _, p := range configPaths {
		testPath := filepath.Join(p, vocabularyFileName)
		if _, err := os.Stat(testPath); err == nil {
			return testPath, nil
		}
	}
	return "", errVocabularyNotFound
}

// loadVocabulary parses a gates.yml file. Lists left out of the file keep their
// built-in defaults; entries are uppercased.
func loadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("error reading vocabulary file %s: %w", path, err)
	}

	var parsed Vocabulary
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Vocabulary{}, fmt.Errorf("error parsing vocabulary file %s: %w", path, err)
	}

	vocab := defaultVocabulary()
	if parsed.BufferKeywords != nil {
		vocab.BufferKeywords = normalizeKeywords(parsed.BufferKeywords)
	}
	if parsed.SpecialNodes != nil {
		vocab.SpecialNodes = normalizeKeywords(parsed.SpecialNodes)
	}
	return vocab, nil
}

// normalizeKeywords uppercases and trims entries, dropping empty ones. Entries
// holding comma-separated lists, as environment variables do, are split.
func normalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, entry := range in {
		for _, kw := range strings.Split(entry, ",") {
			if kw = strings.ToUpper(strings.TrimSpace(kw)); kw != "" {
				out = append(out, kw)
			}
		}
	}
	return out
}
