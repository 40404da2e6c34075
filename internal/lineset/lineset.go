// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lineset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/linecmp/linecmp/internal/log"
)

// maxLineSize bounds a single physical line. bufio.Scanner defaults to 64KiB
// which is too small for some generated lists.
const maxLineSize = 16 * 1024 * 1024

// ErrModeMismatch is returned by Missing when the two sets were built with
// different case sensitivity.
var ErrModeMismatch = errors.New("line sets use different case sensitivity")

// ErrInvalidUTF8 is returned when an input line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

var errRegular = errors.New("not a regular file")

// FileError reports an input file that does not exist, is not a regular file
// or could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.NotFound() {
		return fmt.Sprintf("file does not exist: %s", e.Path)
	}
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the path named by the error is absent.
func (e *FileError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// Set is an immutable collection of normalized lines read from one source.
type Set struct {
	Source        string
	CaseSensitive bool
	lines         map[string]struct{}
}

// Load reads the file at path into a Set. The path is checked before any read
// is attempted so that a missing file is reported as such and not as a read
// failure.
func Load(path string, caseSensitive bool) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &FileError{Path: path, Err: errRegular}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	set, err := Parse(f, path, caseSensitive)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	log.Debugf("loaded %s: lines=%d caseSensitive=%t", path, set.Len(), caseSensitive)
	return set, nil
}

// Parse builds a Set from r. source is recorded on the Set for reporting.
func Parse(r io.Reader, source string, caseSensitive bool) (*Set, error) {
	set := &Set{
		Source:        source,
		CaseSensitive: caseSensitive,
		lines:         make(map[string]struct{}),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("line %d: %w", n, ErrInvalidUTF8)
		}
		line, ok := set.normalize(string(raw))
		if !ok {
			continue
		}
		set.lines[line] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lines: %w", err)
	}

	return set, nil
}

// normalize trims and case-folds line according to the set's mode. The bool
// is false for lines that are blank after trimming.
func (s *Set) normalize(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	if !s.CaseSensitive {
		line = strings.ToLower(line)
	}
	return line, true
}

// Len returns the number of distinct lines in the set.
func (s *Set) Len() int {
	return len(s.lines)
}

// Has reports whether line, normalized the same way as the set's contents, is
// a member.
func (s *Set) Has(line string) bool {
	line, ok := s.normalize(line)
	if !ok {
		return false
	}
	_, ok = s.lines[line]
	return ok
}

// Lines returns the set's members in ascending order.
func (s *Set) Lines() []string {
	lines := make([]string, 0, len(s.lines))
	for line := range s.lines {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return lines
}

// Missing returns the members of a that are absent from b, sorted ascending.
// The result is empty, never nil, when b contains all of a.
func Missing(a, b *Set) ([]string, error) {
	if a.CaseSensitive != b.CaseSensitive {
		return nil, ErrModeMismatch
	}

	missing := []string{}
	for line := range a.lines {
		if _, ok := b.lines[line]; !ok {
			missing = append(missing, line)
		}
	}
	sort.Strings(missing)

	log.Debugf("missing from %s: %d of %d", b.Source, len(missing), a.Len())
	return missing, nil
}
