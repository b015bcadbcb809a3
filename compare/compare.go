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

package compare

import (
	"github.com/sotang85/word-file-check/internal/config"
	"github.com/sotang85/word-file-check/sentence"
)

// Comparer aligns two sentence sequences and classifies each sentence of both sides. A Comparer
// is immutable and safe for concurrent use; each Compare call carries its own state.
type Comparer struct {
	cfg config.Config
}

// New returns a Comparer with the given options applied on top of the defaults. It fails when
// the resulting settings are inconsistent, for example a threshold outside [0, 1].
func New(opts ...Option) (*Comparer, error) {
	cfg := config.FromOptions(opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Comparer{cfg: cfg}, nil
}

// Compare aligns the original sequence a with the revised sequence b and returns one record per
// sentence of either side, ordered by position. Every sentence of a and of b appears in exactly
// one record. Compare never mutates its inputs.
func (c *Comparer) Compare(a, b []sentence.Sentence) []Record {
	return newAligner(a, b, c.cfg).run()
}

// Sentences is a convenience wrapper that builds a Comparer and compares in one call.
func Sentences(a, b []sentence.Sentence, opts ...Option) ([]Record, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Compare(a, b), nil
}
