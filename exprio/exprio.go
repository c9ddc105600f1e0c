/*
 * exprio.go, part of angmom.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package exprio reads and writes energy matrices as JSON files. Files with the
//extension .zst are compressed with z-standard, files with the extension .gz
//with gzip, and anything else is plain JSON.
package exprio

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/angmom"
)

type compression int

const (
	plain compression = iota
	zst
	gz
)

func compressionOf(name string) compression {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".zst", ".zstd":
		return zst
	case ".gz":
		return gz
	case ".json", ".txt":
		return plain
	default:
		slog.Warn("unknown extension, the file will be plain JSON", "file", name, "extension", ext)
		return plain
	}
}

//zstd.Decoder's Close doesn't return an error, so it is not an io.ReadCloser.
type zstdReader struct {
	*zstd.Decoder
}

func (z zstdReader) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newWriter(w io.Writer, c compression) (io.WriteCloser, error) {
	switch c {
	case zst:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case gz:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	}
	return nopWriteCloser{w}, nil
}

func newReader(r io.Reader, c compression) (io.ReadCloser, error) {
	switch c {
	case zst:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReader{d}, nil
	case gz:
		return gzip.NewReader(r)
	}
	return io.NopCloser(r), nil
}

//Write encodes m as JSON into w, compressed as the extension of name indicates.
func Write(w io.Writer, name string, m *angmom.Matrix) error {
	cw, err := newWriter(w, compressionOf(name))
	if err != nil {
		return newError(name, "Write", err)
	}
	if err := json.NewEncoder(cw).Encode(m); err != nil {
		cw.Close()
		return newError(name, "Write", err)
	}
	if err := cw.Close(); err != nil {
		return newError(name, "Write", err)
	}
	return nil
}

//Read decodes a matrix from r, decompressing it as the extension of name indicates.
func Read(r io.Reader, name string) (*angmom.Matrix, error) {
	cr, err := newReader(bufio.NewReader(r), compressionOf(name))
	if err != nil {
		return nil, newError(name, "Read", err)
	}
	defer cr.Close()
	m := new(angmom.Matrix)
	if err := json.NewDecoder(cr).Decode(m); err != nil {
		return nil, newError(name, "Read", err)
	}
	return m, nil
}

//WriteFile writes m to the file name, creating or truncating it.
func WriteFile(name string, m *angmom.Matrix) error {
	f, err := os.Create(name)
	if err != nil {
		return newError(name, "WriteFile", err)
	}
	if err := Write(f, name, m); err != nil {
		f.Close()
		return errDecorate(err, "WriteFile")
	}
	if err := f.Close(); err != nil {
		return newError(name, "WriteFile", err)
	}
	return nil
}

//ReadFile reads a matrix written by WriteFile. The symbols of the expressions
//read are angmom.Labels.
func ReadFile(name string) (*angmom.Matrix, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(name, "ReadFile", err)
	}
	defer f.Close()
	m, err := Read(f, name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return m, nil
}
