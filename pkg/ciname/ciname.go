// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package ciname provides a case-insensitive, case-preserving string key.
//
// Tool cache keys need to compare equal regardless of the casing a manifest
// author used for a repository path, while still displaying the casing the
// author actually wrote.
package ciname

import "strings"

// Key is a string that compares and hashes case-insensitively but displays
// with its original casing.
type Key string

// New wraps a string as a case-insensitive key.
func New(s string) Key {
	return Key(s)
}

// String returns the key with its original casing.
func (k Key) String() string {
	return string(k)
}

// Equal reports whether two keys are equal under Unicode case folding.
func (k Key) Equal(other Key) bool {
	return strings.EqualFold(string(k), string(other))
}

// Fold returns the lowercase form used as a map key so that two Keys that
// are Equal produce the same Fold value.
func (k Key) Fold() string {
	return strings.ToLower(string(k))
}

// MarshalText implements encoding.TextMarshaler, so a Key round-trips
// through JSON as its original-case string.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	*k = Key(text)
	return nil
}
