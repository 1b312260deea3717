// Package input acquires raw records from files and interactive
// prompts.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotFound marks a missing input file so callers can report it apart
// from other I/O failures.
var ErrNotFound = errors.New("input file not found")

// Line is one raw record with its position in the source file.
type Line struct {
	Number int // 1-based line number
	Text   string
}

// ReadLines reads raw record lines from a file, one record per line.
// Blank lines and #-comments are skipped; original line numbers are
// kept for error reporting. Duplicate lines stay, the same place can
// be listed twice.
func ReadLines(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []Line
	n := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())

		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		lines = append(lines, Line{Number: n, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return lines, nil
}
