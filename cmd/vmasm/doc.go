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

// The vmasm command assembles a source file into a binary image for the
// 32-bit stack machine. See package github.com/cooperalpaca/vmAssmbler/asm for
// the source syntax.
//
// Usage:
//
//	vmasm [flags] [input]
//
// The input file defaults to asm/input.asm.
//
//	-config filename
//		  load settings from a YAML file
//	-d
//		  disassemble the input image instead of assembling it
//	-debug
//		  print a full stack trace on errors
//	-extended
//		  enable the arithmetic, pop, push, print, stprint, dump and return mnemonics
//	-labels
//		  print the label table
//	-o filename
//		  output image file name (default "output.bin")
//	-strict
//		  reject unsupported mnemonics instead of assembling them as 0
//	-v
//		  verbose logging
//
// On success, vmasm prints the number of instructions written and the output
// file name. On error, it prints the offending file and line and exits with
// status 1. The output file is removed.
//
// The configuration file may set any of the following keys. Flags given on
// the command line take precedence.
//
//	output: prog.bin
//	strict: true
//	extended: false
//	labels: true
//	verbose: false
package main
