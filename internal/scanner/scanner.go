// Package scanner tokenizes individual lines of ROS 2 interface
// definition files (.msg, .srv, .action).
package scanner

import (
	"bufio"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/golangros/gorosidl/internal/types"
)

// arrayAnnotation matches any bracketed size or bound annotation
// ("[5]", "[<=10]", "[]"). All collapse to the plain array marker.
var arrayAnnotation = regexp.MustCompile(`\[.*\]`)

// Split tokenizes one raw line into a (type token, name token) pair.
//
// Pure comments, constant declarations (any line containing '='), and
// blank lines yield ("", ""). Trailing inline comments are stripped.
// Bracketed annotations are rewritten to "[]". The line is split on the
// first run of whitespace; a line with a single token yields an empty
// name. Any '/' inside the type token is rewritten to "/msg/" so that a
// bare "pkg/Type" cross-reference carries the message namespace.
func Split(line string) (typeToken, name string) {
	if strings.HasPrefix(line, "#") || strings.Contains(line, "=") {
		return "", ""
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	s := strings.TrimSpace(line)
	if s == "" {
		return "", ""
	}
	s = arrayAnnotation.ReplaceAllString(s, "[]")

	if i := strings.IndexAny(s, " \t"); i >= 0 {
		typeToken = s[:i]
		name = strings.TrimSpace(s[i:])
	} else {
		typeToken = s
	}
	typeToken = strings.ReplaceAll(typeToken, "/", "/msg/")
	return typeToken, name
}

// IsSeparator reports whether the raw line is a section separator: any
// line containing three or more consecutive dashes switches the active
// section of a service or action file.
func IsSeparator(line string) bool {
	return strings.Contains(line, "---")
}

// Scanner reads a specification file line by line. Lines have no length
// limit: an oversized line is content, not a read failure.
type Scanner struct {
	r    *bufio.Reader
	text string
	line int
	done bool
	err  error
	types.Logger
}

// New returns a Scanner over the given reader.
func New(r io.Reader, logger types.Logger) *Scanner {
	return &Scanner{r: bufio.NewReader(r), Logger: logger}
}

// Scan advances to the next line. It returns false at end of input or on
// a read error; check Err afterwards.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}
	text, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return false
		}
		s.done = true
		if text == "" {
			return false
		}
	}
	s.text = strings.TrimSuffix(text, "\n")
	s.text = strings.TrimSuffix(s.text, "\r")
	s.line++
	if s.TraceEnabled() {
		s.Trace("line", slog.Int("n", s.line), slog.String("raw", s.text))
	}
	return true
}

// Text returns the current raw line without its trailing newline.
func (s *Scanner) Text() string {
	return s.text
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}
