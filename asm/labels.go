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

import "log/slog"

// LabelInfo describes a label declaration.
type LabelInfo struct {
	Name   string
	Line   int // source line of the declaration
	Offset int // byte offset in the output image, header excluded
}

// LabelTable maps label names to their first declaration.
type LabelTable struct {
	labels map[string]LabelInfo
	order  []string
}

func newLabelTable() *LabelTable {
	return &LabelTable{labels: make(map[string]LabelInfo)}
}

// bind records a label. It returns false and leaves the table untouched if the
// label is already defined.
func (t *LabelTable) bind(l LabelInfo) bool {
	if _, ok := t.labels[l.Name]; ok {
		return false
	}
	t.labels[l.Name] = l
	t.order = append(t.order, l.Name)
	return true
}

// Lookup returns the declaration of the named label.
func (t *LabelTable) Lookup(name string) (LabelInfo, bool) {
	l, ok := t.labels[name]
	return l, ok
}

// Len returns the number of labels.
func (t *LabelTable) Len() int { return len(t.order) }

// All returns all labels in declaration order.
func (t *LabelTable) All() []LabelInfo {
	all := make([]LabelInfo, len(t.order))
	for i, n := range t.order {
		all[i] = t.labels[n]
	}
	return all
}

// InstructionCount returns the number of machine instructions the given
// source line assembles to: ceil(len/3) for stpush, where len is the length
// of the literal with its quotes stripped but escape sequences left as is; 1
// for any other instruction. Blank lines, comments and labels count for 0.
func InstructionCount(src string) int {
	l := classify(0, src)
	return l.count()
}

func (l *line) count() int {
	if l.kind != lineInstr {
		return 0
	}
	if l.mnemonic() == "stpush" {
		lit, _ := unquote(l.rest())
		return (len(lit) + 2) / 3
	}
	return 1
}

// buildLabels is pass 1: it walks the source, tracks the memory offset of
// each line and binds labels to it. Duplicate labels are reported as warnings
// and the first declaration is kept.
func (a *assembler) buildLabels(lines []line) (*LabelTable, error) {
	t := newLabelTable()
	offset := 0
	for i := range lines {
		l := &lines[i]
		switch l.kind {
		case lineLabel:
			if l.text == "" {
				return nil, lineError(a.name, l, ErrSyntax, "empty label name")
			}
			if !t.bind(LabelInfo{Name: l.text, Line: l.num, Offset: offset}) {
				prev, _ := t.Lookup(l.text)
				a.warn(l, "duplicate label %q, first declared at line %d", l.text, prev.Line)
			}
		case lineInstr:
			offset += 4 * l.count()
		}
	}
	a.log.Debug("labels resolved", slog.String("file", a.name), slog.Int("count", t.Len()), slog.Int("size", offset))
	return t, nil
}
