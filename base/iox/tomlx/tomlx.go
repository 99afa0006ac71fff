// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"errors"
	"io"
	"os"

	"github.com/3v1n0/unity-sub005/base/fsx"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a TOML decoder reading from r.
func NewDecoder(r io.Reader) *toml.Decoder { return toml.NewDecoder(r) }

// Open reads v from filename using TOML encoding. Style.Oracle uses this
// to load the user's decoration-style override file (spec.md §4.3).
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f)
}

// Read decodes v from reader using TOML encoding.
func Read(v any, reader io.Reader) error {
	return NewDecoder(reader).Decode(v)
}

// ReadBytes decodes v from data using TOML encoding.
func ReadBytes(v any, data []byte) error {
	return toml.Unmarshal(data, v)
}

// NewEncoder returns a TOML encoder writing to w, with table indentation
// and multiline arrays for readable round-tripped files.
func NewEncoder(w io.Writer) *toml.Encoder {
	return toml.NewEncoder(w).SetIndentTables(true).SetArraysMultiline(true)
}

// Save writes v to filename using TOML encoding.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(v, f)
}

// Write encodes v to writer using TOML encoding.
func Write(v any, writer io.Writer) error {
	return NewEncoder(writer).Encode(v)
}

// WriteBytes encodes v using TOML encoding, returning the bytes.
func WriteBytes(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// OpenFromPaths reads v from the first occurrence of file found among
// paths, in order.
func OpenFromPaths(v any, file string, paths ...string) error {
	filenames := fsx.FindFilesOnPaths(paths, file)
	if len(filenames) == 0 {
		return errors.New("tomlx: OpenFromPaths: no files found")
	}
	return Open(v, filenames[0])
}
