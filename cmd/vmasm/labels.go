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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cooperalpaca/vmAssmbler/asm"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeLabels prints the label table to w, as a boxed table on a terminal
// and as CSV otherwise.
func writeLabels(w io.Writer, labels []asm.LabelInfo, tty bool) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Label", "Line", "Offset"})
	for _, l := range labels {
		t.AppendRow(table.Row{l.Name, l.Line, fmt.Sprintf("0x%04x", l.Offset)})
	}
	var out string
	if tty {
		t.SetStyle(table.StyleLight)
		t.SetTitle("Labels")
		out = t.Render()
	} else {
		out = t.RenderCSV()
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
