// This file is part of vmAssmbler - https://github.com/cooperalpaca/vmAssmbler
//
// Copyright 2016 The vmAssmbler Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineLabel
	lineInstr
)

// line is a classified source line. For labels, text is the label name. For
// instructions, text is the comment-free instruction and fields its
// whitespace separated tokens.
type line struct {
	num    int
	kind   lineKind
	text   string
	fields []string
}

// mnemonic returns the lower-cased first token of an instruction line.
func (l *line) mnemonic() string {
	if len(l.fields) == 0 {
		return ""
	}
	return strings.ToLower(l.fields[0])
}

// operands returns the tokens following the mnemonic.
func (l *line) operands() []string {
	if len(l.fields) == 0 {
		return nil
	}
	return l.fields[1:]
}

// rest returns the raw text following the mnemonic.
func (l *line) rest() string {
	if len(l.fields) == 0 {
		return ""
	}
	return strings.TrimSpace(l.text[len(l.fields[0]):])
}

// stripComment removes a trailing '#' comment. A '#' inside a double quoted
// literal does not start a comment.
func stripComment(s string) string {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			quoted = !quoted
		case '#':
			if !quoted {
				return s[:i]
			}
		}
	}
	return s
}

func classify(num int, raw string) line {
	s := strings.TrimSpace(stripComment(raw))
	switch {
	case s == "":
		return line{num: num, kind: lineBlank}
	case strings.HasSuffix(s, ":"):
		return line{num: num, kind: lineLabel, text: strings.TrimSpace(s[:len(s)-1])}
	}
	return line{num: num, kind: lineInstr, text: s, fields: strings.Fields(s)}
}

// readLines reads and classifies all lines from r. Line numbers start at 1.
func readLines(r io.Reader) ([]line, error) {
	var lines []line
	s := bufio.NewScanner(r)
	s.Buffer(nil, math.MaxInt32)
	n := 1
	for ; s.Scan(); n++ {
		lines = append(lines, classify(n, s.Text()))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d: read failed", n)
	}
	return lines, nil
}

// unquote strips the surrounding double quotes of a string literal. ok is
// false if s is not quoted.
func unquote(s string) (lit string, ok bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s, false
	}
	return s[1 : len(s)-1], true
}

// unescape resolves the \\, \n and \" escape sequences. Any other backslash
// sequence is kept as is.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				c = '\\'
				i++
			case 'n':
				c = '\n'
				i++
			case '"':
				c = '"'
				i++
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
