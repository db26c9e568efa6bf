package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.uber.org/zap"
)

// locateFiles assigns every configured name its position and reports whether it
// exists. Positions are fixed here, so skipping an entry never renumbers the rest.
func locateFiles(names []string, startIndex int) ([]InputFile, []bool) {
	inputs := make([]InputFile, len(names))
	exists := make([]bool, len(names))
	for i, name := range names {
		inputs[i] = InputFile{Index: startIndex + i, Name: name}
		_, err := os.Stat(name)
		exists[i] = err == nil
	}
	return inputs, exists
}

// scanDirectory walks root and returns files with the given extension in lexical
// order. Hidden entries and paths matched by root/.gitignore are skipped.
func scanDirectory(root, ext string, log *zap.SugaredLogger) ([]string, error) {
	ext = normalizeExt(ext)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var ignoreMatcher gitignore.IgnoreMatcher
	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err == nil {
		matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
		if err != nil {
			log.Warnf("could not parse .gitignore file %s: %v", gitIgnorePath, err)
		} else {
			ignoreMatcher = matcher
		}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("error accessing path %s: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}

		isDir := d.IsDir()
		if isHidden(d.Name()) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if ignoreMatcher != nil && ignoreMatcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if !isDir && strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}
	return files, nil
}

// normalizeExt adds the leading dot to extensions given as "ckt".
func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// caseName strips the last extension from name. Names without an extension and
// dot-files such as ".ckt" are returned unchanged.
func caseName(name string) string {
	stem := strings.TrimLeft(filepath.Base(name), ".")
	ext := filepath.Ext(stem)
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// isHidden checks if a base name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
