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

// Package image reads and writes binary program images.
//
// An image is the 4 bytes magic header DE AD BE EF followed by the program
// words, each stored as a 4 bytes little endian value. The number of words is
// always a multiple of 4, the program being padded with nop instructions.
package image

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/cooperalpaca/vmAssmbler/internal/iox"
	"github.com/cooperalpaca/vmAssmbler/isa"
	"github.com/pkg/errors"
)

// Magic is the image file header.
var Magic = [4]byte{0xDE, 0xAD, 0xBE, 0xEF}

// DefaultFileName is the image file name used when none is configured.
const DefaultFileName = "output.bin"

// Errors.
var (
	ErrEmpty = errors.New("empty program")
	ErrMagic = errors.New("bad magic header")
)

// Pad returns the instruction stream padded with nop instructions to a
// multiple of 4 instructions. The input slice is not modified.
func Pad(stream []isa.Instruction) []isa.Instruction {
	p := stream[:len(stream):len(stream)]
	for len(p)%4 != 0 {
		p = append(p, isa.Nop{})
	}
	return p
}

// Write pads and writes the instruction stream as an image to w. It returns
// the number of words written, padding included. An empty stream is an error
// with cause ErrEmpty.
func Write(w io.Writer, stream []isa.Instruction) (int, error) {
	if len(stream) == 0 {
		return 0, errors.WithStack(ErrEmpty)
	}
	stream = Pad(stream)
	ew := iox.NewErrWriter(w)
	ew.Write(Magic[:])
	for _, ins := range stream {
		if ew.WriteWord(isa.Encode(ins)) != nil {
			break
		}
	}
	if ew.Err != nil {
		return 0, ew.Err
	}
	return len(stream), nil
}

// Save writes the instruction stream to an image file. The file is removed on
// error.
func Save(fileName string, stream []isa.Instruction) (n int, err error) {
	if len(stream) == 0 {
		return 0, errors.WithStack(ErrEmpty)
	}
	f, err := os.Create(fileName)
	if err != nil {
		return 0, errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
			n = 0
		}
	}()
	w := bufio.NewWriter(f)
	if n, err = Write(w, stream); err != nil {
		return 0, errors.Wrap(err, "save failed")
	}
	if err = w.Flush(); err != nil {
		return 0, errors.Wrap(err, "save failed")
	}
	return n, nil
}

// Read reads an image and returns its words.
func Read(r io.Reader) ([]uint32, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(ErrMagic, "image too short")
		}
		return nil, errors.Wrap(err, "header read failed")
	}
	if !bytes.Equal(hdr[:], Magic[:]) {
		return nil, errors.Wrapf(ErrMagic, "got % x", hdr[:])
	}
	var words []uint32
	var b [4]byte
	for {
		_, err := io.ReadFull(r, b[:])
		if err == io.EOF {
			return words, nil
		}
		if err == io.ErrUnexpectedEOF {
			return nil, errors.Errorf("truncated word at offset %d", 4+4*len(words))
		}
		if err != nil {
			return nil, errors.Wrap(err, "word read failed")
		}
		words = append(words, binary.LittleEndian.Uint32(b[:]))
	}
}

// Load reads the image file fileName and returns its words.
func Load(fileName string) ([]uint32, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	words, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	return words, nil
}
