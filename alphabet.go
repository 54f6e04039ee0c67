/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package seuid

import (
	"fmt"
	"unicode/utf8"
)

// Well-known alphabets
const (
	// digits and mixed-case letters without 0, O, I, l
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	Base16    = "0123456789abcdef"
	Base32    = "0123456789ABCDEFGHJKMNPQRSTVWXYZ" // Crockford
	Base36    = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base62    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Base64URL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Bounds of alphabet size
const (
	MinAlphabetLen = 16
	MaxAlphabetLen = 64
)

// Alphabet is validated set of symbols used by codec
type Alphabet struct {
	symbols []rune
	index   map[rune]uint64
	length  int
}

// NewAlphabet validates symbols and derives fixed length of encoded
// identifier.
func NewAlphabet(symbols string) (Alphabet, error) {
	n := utf8.RuneCountInString(symbols)
	if n < MinAlphabetLen || n > MaxAlphabetLen {
		return Alphabet{}, fmt.Errorf("%w: %d symbols, expected [%d, %d]",
			ErrInvalidAlphabetLength, n, MinAlphabetLen, MaxAlphabetLen)
	}

	abc := Alphabet{
		symbols: make([]rune, 0, n),
		index:   make(map[rune]uint64, n),
	}

	for _, r := range symbols {
		if _, has := abc.index[r]; has {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateAlphabetSymbol, r)
		}
		abc.index[r] = uint64(len(abc.symbols))
		abc.symbols = append(abc.symbols, r)
	}

	// number of digits of maximum value is the smallest L: k^L > 2¹²⁸ − 1
	abc.length = digits(maxK, uint64(n))

	return abc, nil
}

// Len returns base of the alphabet
func (abc Alphabet) Len() int { return len(abc.symbols) }

// EncodedLen returns fixed length of identifier encoded with the alphabet
func (abc Alphabet) EncodedLen() int { return abc.length }

// String returns symbols of the alphabet
func (abc Alphabet) String() string { return string(abc.symbols) }
