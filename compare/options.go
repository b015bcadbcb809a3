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
	"fmt"

	"github.com/sotang85/word-file-check/internal/config"
)

// Option configures a [Comparer].
type Option = config.Option

// Threshold sets the minimum similarity score required to classify a sentence pair as modified
// rather than unrelated. The default is 0.8. Values outside [0, 1] are rejected by [New].
func Threshold(v float64) Option {
	return func(cfg *config.Config) {
		cfg.Threshold = v
	}
}

// Window sets the look-ahead window of the sentence aligner: how many sentences past the current
// position on either side are considered when searching for a match. The default is 10. Values
// below 1 are rejected by [New].
func Window(n int) Option {
	return func(cfg *config.Config) {
		cfg.Window = n
	}
}

// IgnorePunct removes punctuation from sentences before they are compared.
func IgnorePunct() Option {
	return func(cfg *config.Config) {
		cfg.IgnorePunct = true
	}
}

// IgnoreSpace collapses whitespace runs to a single space and trims leading and trailing
// whitespace before sentences are compared.
func IgnoreSpace() Option {
	return func(cfg *config.Config) {
		cfg.IgnoreSpace = true
	}
}

// NumericFormat sets the thousands and decimal separators used to recognize and parse numeric
// tokens. The default is ',' and '.'.
func NumericFormat(thousands, decimal rune) Option {
	return func(cfg *config.Config) {
		cfg.Thousands = thousands
		cfg.Decimal = decimal
	}
}

// ParseIgnore translates textual ignore rules ("punct", "space") into options. Unrecognized rules
// are a configuration error.
func ParseIgnore(rules []string) ([]Option, error) {
	var opts []Option
	for _, rule := range rules {
		switch rule {
		case "punct":
			opts = append(opts, IgnorePunct())
		case "space":
			opts = append(opts, IgnoreSpace())
		default:
			return nil, fmt.Errorf("unsupported ignore option: %q", rule)
		}
	}
	return opts, nil
}
