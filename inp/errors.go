// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// ConfigurationError indicates invalid or out-of-range parametric input detected
// at build time. It is always raised before any solver call.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// confErr returns a new ConfigurationError with formatted message
func confErr(msg string, prm ...interface{}) *ConfigurationError {
	return &ConfigurationError{Msg: io.Sf(msg, prm...)}
}

// PersistenceError indicates a missing or malformed persisted model file
type PersistenceError struct {
	Msg string
}

func (e *PersistenceError) Error() string { return e.Msg }

// persErr returns a new PersistenceError with formatted message
func persErr(msg string, prm ...interface{}) *PersistenceError {
	return &PersistenceError{Msg: io.Sf(msg, prm...)}
}
