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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cooperalpaca/vmAssmbler/asm"
	"github.com/cooperalpaca/vmAssmbler/image"
	"github.com/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestAssembleFile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "input.asm", "start:\nexit\nexit\nexit\n")
	cfg := defaultConfig()
	cfg.Output = filepath.Join(dir, "output.bin")
	cfg.Labels = true

	var out bytes.Buffer
	if err := assemble(src, &cfg, newLogger(io.Discard, false), &out); err != nil {
		t.Fatalf("%+v", err)
	}
	b, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 20 || !bytes.Equal(b[:4], image.Magic[:]) {
		t.Errorf("bad image: % x", b)
	}
	if !strings.Contains(out.String(), "start,1,0x0000") {
		t.Errorf("label table missing from output:\n%s", out.String())
	}
	if !strings.HasSuffix(out.String(), "wrote 4 instructions to "+cfg.Output+"\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	if err = disassemble(cfg.Output, &out); err != nil {
		t.Fatalf("%+v", err)
	}
	if n := strings.Count(out.String(), "exit 0"); n != 3 || !strings.Contains(out.String(), "nop") {
		t.Errorf("unexpected disassembly:\n%s", out.String())
	}
}

func TestAssembleFileErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Output = filepath.Join(dir, "output.bin")
	log := newLogger(io.Discard, false)

	err := assemble(writeFile(t, dir, "bad.asm", "debug hex zz\n"), &cfg, log, io.Discard)
	var ae *asm.Error
	if !errors.As(err, &ae) || ae.Line != 1 {
		t.Errorf("expected an error at line 1, got %v", err)
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Errorf("output file must not exist: %v", err)
	}

	err = assemble(writeFile(t, dir, "empty.asm", "# nothing\nlabel:\n"), &cfg, log, io.Discard)
	if errors.Cause(err) != image.ErrEmpty {
		t.Errorf("expected empty program error, got %v", err)
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Errorf("output file must not exist: %v", err)
	}

	if err = assemble(filepath.Join(dir, "missing.asm"), &cfg, log, io.Discard); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected file not found, got %v", err)
	}

	cfg.Strict = true
	err = assemble(writeFile(t, dir, "goto.asm", "goto end\nend:\n"), &cfg, log, io.Discard)
	if errors.Cause(err) != asm.ErrUnsupported {
		t.Errorf("expected unsupported mnemonic error, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	if err := loadConfig(writeFile(t, dir, "c.yaml", "output: prog.bin\nstrict: true\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	exp := config{Output: "prog.bin", Strict: true}
	if cfg != exp {
		t.Errorf("got %+v, expected %+v", cfg, exp)
	}

	cfg = defaultConfig()
	if err := loadConfig(writeFile(t, dir, "empty.yaml", ""), &cfg); err != nil || cfg != defaultConfig() {
		t.Errorf("empty config: %+v, %v", cfg, err)
	}
	if err := loadConfig(writeFile(t, dir, "bad.yaml", "outptu: x\n"), &cfg); err == nil {
		t.Error("expected an error for unknown keys")
	}
	if err := loadConfig(writeFile(t, dir, "noout.yaml", "output: \"\"\n"), &cfg); err == nil {
		t.Error("expected an error for an empty output name")
	}
}

func TestWriteLabels(t *testing.T) {
	labels := []asm.LabelInfo{{Name: "main", Line: 3, Offset: 0}, {Name: "loop", Line: 7, Offset: 20}}
	var b bytes.Buffer
	if err := writeLabels(&b, labels, false); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"label,line,offset", "main,3,0x0000", "loop,7,0x0014"} {
		if !strings.Contains(strings.ToLower(b.String()), s) {
			t.Errorf("missing %q in:\n%s", s, b.String())
		}
	}
	b.Reset()
	writeLabels(&b, labels, true)
	if !strings.Contains(b.String(), "loop") || !strings.Contains(b.String(), "┌") {
		t.Errorf("unexpected table:\n%s", b.String())
	}
	if isTerminal(&b) {
		t.Error("a buffer is not a terminal")
	}
}
