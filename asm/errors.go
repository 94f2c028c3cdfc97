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
	"fmt"

	"github.com/pkg/errors"
)

// Error causes. Use errors.Cause to retrieve them from an error returned by
// Assemble.
var (
	ErrSyntax      = errors.New("syntax error")
	ErrUnsupported = errors.New("unsupported mnemonic")
)

// Error is an assembly error at a given source line.
type Error struct {
	Filename string
	Line     int
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Msg)
}

// Cause returns the error class, ErrSyntax or ErrUnsupported.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the error class.
func (e *Error) Unwrap() error { return e.Err }

func lineError(name string, l *line, cause error, format string, args ...interface{}) error {
	return errors.WithStack(&Error{
		Filename: name,
		Line:     l.num,
		Msg:      fmt.Sprintf(format, args...),
		Err:      cause,
	})
}

// Warning is a non fatal diagnostic.
type Warning struct {
	Filename string
	Line     int
	Msg      string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: warning: %s", w.Filename, w.Line, w.Msg)
}
