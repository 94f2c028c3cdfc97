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

package iox

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

type failAfter struct {
	n   int
	err error
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	f.n--
	return len(p), nil
}

func TestWriteWord(t *testing.T) {
	var b bytes.Buffer
	ew := NewErrWriter(&b)
	ew.WriteWord(0xDEADBEEF)
	ew.WriteWord(1)
	if ew.Err != nil {
		t.Fatal(ew.Err)
	}
	exp := []byte{0xEF, 0xBE, 0xAD, 0xDE, 1, 0, 0, 0}
	if !bytes.Equal(b.Bytes(), exp) {
		t.Errorf("got % x, expected % x", b.Bytes(), exp)
	}
	if ew.N != 8 {
		t.Errorf("N = %d, expected 8", ew.N)
	}
}

func TestStickyError(t *testing.T) {
	ew := NewErrWriter(&failAfter{1, io.ErrShortWrite})
	if err := ew.WriteWord(1); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := ew.WriteWord(2); errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("second write: %v", err)
	}
	if n, err := ew.Write([]byte{1}); n != 0 || err != ew.Err {
		t.Errorf("write after error: %d, %v", n, err)
	}
	if ew.N != 4 {
		t.Errorf("N = %d, expected 4", ew.N)
	}
}
