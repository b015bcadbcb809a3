// Copyright 2026 The word-file-check Authors
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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// compare.Option.
package config

import (
	"fmt"
	"unicode"
)

// Config collects all configurable parameters for a comparison run. A Config is fixed before the
// run starts and read-only afterwards.
type Config struct {
	// Threshold is the minimum similarity score required to classify a sentence pair as modified
	// rather than unrelated. Must be in [0, 1].
	Threshold float64

	// Window is the look-ahead window of the sentence aligner, i.e. how many sentences past the
	// current position on either side are considered when searching for a match. Must be >= 1.
	Window int

	// IgnorePunct removes punctuation before sentences are compared.
	IgnorePunct bool

	// IgnoreSpace collapses whitespace runs and trims before sentences are compared.
	IgnoreSpace bool

	// Thousands and Decimal are the separators used when recognizing and parsing numeric tokens.
	Thousands rune
	Decimal   rune
}

// Default is the default configuration.
var Default = Config{
	Threshold: 0.8,
	Window:    10,
	Thousands: ',',
	Decimal:   '.',
}

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config)

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option) Config {
	cfg := Default
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate reports whether the configuration is usable. It is called once before a comparison run
// starts; a run never starts with an invalid configuration.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be in [0, 1], got %v", c.Threshold)
	}
	if c.Window < 1 {
		return fmt.Errorf("window must be >= 1, got %d", c.Window)
	}
	if c.Thousands == c.Decimal {
		return fmt.Errorf("thousands and decimal separators must differ, both are %q", c.Decimal)
	}
	for _, sep := range []rune{c.Thousands, c.Decimal} {
		if unicode.IsDigit(sep) || sep == '-' || sep == '+' {
			return fmt.Errorf("invalid numeric separator %q", sep)
		}
	}
	return nil
}
