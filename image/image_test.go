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

package image_test

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cooperalpaca/vmAssmbler/image"
	"github.com/cooperalpaca/vmAssmbler/isa"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Image", func() {
	exits := func(n int) []isa.Instruction {
		s := make([]isa.Instruction, n)
		for i := range s {
			s[i] = isa.Exit{Code: uint32(i)}
		}
		return s
	}

	Describe("Pad", func() {
		It("should pad to a multiple of 4 with nop", func() {
			p := image.Pad(exits(3))
			Expect(p).To(HaveLen(4))
			Expect(p[3]).To(Equal(isa.Instruction(isa.Nop{})))
		})

		It("should not pad aligned streams", func() {
			Expect(image.Pad(exits(8))).To(HaveLen(8))
		})

		It("should not modify the input", func() {
			s := make([]isa.Instruction, 1, 4)
			s[0] = isa.Dump{}
			image.Pad(s)
			Expect(s[:4][1]).To(BeNil())
		})
	})

	Describe("Write", func() {
		It("should write the header and little endian words", func() {
			var b bytes.Buffer
			n, err := image.Write(&b, exits(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(4))
			Expect(b.Len()).To(Equal(20))
			Expect(b.Bytes()[:4]).To(Equal([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
			Expect(b.Bytes()[4:8]).To(Equal([]byte{0x00, 0x00, 0x00, 0x01}))
			Expect(b.Bytes()[12:16]).To(Equal([]byte{0x02, 0x00, 0x00, 0x01}))
			Expect(b.Bytes()[16:20]).To(Equal([]byte{0x00, 0x00, 0x00, 0x04}))
		})

		It("should reject an empty stream", func() {
			var b bytes.Buffer
			_, err := image.Write(&b, nil)
			Expect(errors.Cause(err)).To(Equal(image.ErrEmpty))
			Expect(b.Len()).To(BeZero())
		})
	})

	Describe("Save and Load", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("should round trip", func() {
			name := filepath.Join(dir, "out.bin")
			n, err := image.Save(name, exits(5))
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(8))

			st, err := os.Stat(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Size()).To(Equal(int64(4 + 8*4)))

			words, err := image.Load(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(HaveLen(8))
			Expect(words[4]).To(Equal(uint32(0x01000004)))
			Expect(words[7]).To(Equal(isa.Encode(isa.Nop{})))
		})

		It("should not leave a file behind on error", func() {
			name := filepath.Join(dir, "empty.bin")
			_, err := image.Save(name, nil)
			Expect(errors.Cause(err)).To(Equal(image.ErrEmpty))
			_, err = os.Stat(name)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should fail on a missing directory", func() {
			_, err := image.Save(filepath.Join(dir, "nope", "out.bin"), exits(1))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Read", func() {
		It("should reject a bad header", func() {
			_, err := image.Read(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEE, 0, 0, 0, 0}))
			Expect(errors.Cause(err)).To(Equal(image.ErrMagic))
		})

		It("should reject a short file", func() {
			_, err := image.Read(bytes.NewReader([]byte{0xDE, 0xAD}))
			Expect(errors.Cause(err)).To(Equal(image.ErrMagic))
		})

		It("should reject a truncated word", func() {
			_, err := image.Read(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF, 1, 2}))
			Expect(err).To(MatchError(ContainSubstring("truncated")))
		})

		It("should accept a header only image", func() {
			words, err := image.Read(bytes.NewReader(image.Magic[:]))
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(BeEmpty())
		})
	})
})
