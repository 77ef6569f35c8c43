// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package fsx wraps filesystem operations so that every error surfaces the
// path that caused it. Callers should never need to inspect a bare
// *os.PathError to find out what file was involved.
package fsx

import (
	"bufio"
	"io"
	"os"
)

// PathError annotates an underlying error with the path that caused it and
// the operation that was attempted.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// TryRead reads a file, returning (nil, nil) if it does not exist instead of
// an error.
func TryRead(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if os.IsNotExist(err) {
		return nil, nil
	}
	return nil, wrap("read", path, err)
}

// TryReadString is TryRead for strings; it reports an absent file as
// ("", false, nil) via the ok return.
func TryReadString(path string) (contents string, ok bool, err error) {
	data, err := TryRead(path)
	if err != nil {
		return "", false, err
	}
	if data == nil {
		return "", false, nil
	}
	return string(data), true, nil
}

// Read reads a file, surfacing a not-found error like any other.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	return data, wrap("read", path, err)
}

// Write writes a file, creating or truncating it.
func Write(path string, contents []byte) error {
	return wrap("write", path, os.WriteFile(path, contents, 0o644))
}

// WriteIfNotExists writes a file only if it is currently absent.
func WriteIfNotExists(path string, contents []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return wrap("stat", path, err)
	}
	return Write(path, contents)
}

// Copy copies source to destination byte-for-byte.
func Copy(source, destination string) error {
	in, err := os.Open(source)
	if err != nil {
		return wrap("open", source, err)
	}
	defer in.Close()

	out, err := os.Create(destination)
	if err != nil {
		return wrap("create", destination, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return &PathError{Op: "copy", Path: source + " -> " + destination, Err: err}
	}
	return wrap("close", destination, out.Close())
}

// CopyFromReader streams an arbitrary reader to a destination file,
// buffering the write the way archive extraction needs to.
func CopyFromReader(r io.Reader, destination string) error {
	out, err := os.Create(destination)
	if err != nil {
		return wrap("create", destination, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := io.Copy(w, r); err != nil {
		return wrap("write", destination, err)
	}
	if err := w.Flush(); err != nil {
		return wrap("write", destination, err)
	}
	return wrap("close", destination, out.Close())
}

// CreateDirAll ensures a directory and all of its parents exist.
func CreateDirAll(path string) error {
	return wrap("mkdir", path, os.MkdirAll(path, 0o755))
}

// SetExecutable marks a file as executable by everyone, matching the
// permissive mode the original tool cache used for extracted binaries.
func SetExecutable(path string) error {
	return wrap("chmod", path, os.Chmod(path, 0o777))
}

// Exists reports whether path exists, swallowing any other stat error as
// "does not exist" — callers that need the real error should use os.Stat
// directly.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
