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
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// numericLike reports whether a token looks like a number under the given separators: an optional
// sign, a leading digit, and otherwise only digits and separators. A numeric-looking token may
// still fail to parse (e.g. "1.2.3"); that distinction is what keeps parse failures from being
// errors.
func numericLike(tok string, thousands, decimal rune) bool {
	runes := []rune(tok)
	if len(runes) > 0 && (runes[0] == '-' || runes[0] == '+') {
		runes = runes[1:]
	}
	if len(runes) == 0 || !unicode.IsDigit(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsDigit(r) && r != thousands && r != decimal {
			return false
		}
	}
	return true
}

// parseNumber parses a numeric-looking token into an exact decimal value. Thousands separators
// are dropped and the decimal separator is mapped to '.' before parsing.
func parseNumber(tok string, thousands, dec rune) (decimal.Decimal, bool) {
	if !numericLike(tok, thousands, dec) {
		return decimal.Decimal{}, false
	}
	var b strings.Builder
	for _, r := range tok {
		switch r {
		case thousands:
		case dec:
			b.WriteRune('.')
		default:
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// formatDelta formats a delta with an explicit sign and without trailing fractional zeros:
// "+250", "-3", "+34.5", "0".
func formatDelta(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if d.Sign() > 0 {
		s = "+" + s
	}
	return s
}
