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
	"errors"
	"fmt"
	"unicode/utf8"
)

// Codec re-encodes identifiers into fixed length strings over an alphabet.
// Codec is immutable and safe for concurrent use.
type Codec struct {
	alphabet Alphabet
}

// CodecConfig option of codec
type CodecConfig func(*codecConfig)

type codecConfig struct {
	symbols string
}

// WithAlphabet configures symbols used by codec, 16 to 64 unique symbols.
func WithAlphabet(symbols string) CodecConfig {
	return func(c *codecConfig) {
		c.symbols = symbols
	}
}

// NewCodec creates codec, Base58 alphabet is used by default.
func NewCodec(opts ...CodecConfig) (*Codec, error) {
	conf := codecConfig{symbols: Base58}
	for _, opt := range opts {
		opt(&conf)
	}

	abc, err := NewAlphabet(conf.symbols)
	if err != nil {
		return nil, err
	}

	return &Codec{alphabet: abc}, nil
}

// MustCodec creates codec, it panics if alphabet is invalid.
func MustCodec(opts ...CodecConfig) *Codec {
	codec, err := NewCodec(opts...)
	if err != nil {
		panic(err)
	}
	return codec
}

// Alphabet of the codec
func (codec *Codec) Alphabet() Alphabet { return codec.alphabet }

// EncodeK encodes identifier to string of exactly EncodedLen symbols.
// Digits are produced by repeated division, least significant first,
// the result is left padded with the first symbol of alphabet.
func (codec *Codec) EncodeK(uid K) string {
	abc := codec.alphabet
	base := uint64(len(abc.symbols))

	b := make([]rune, abc.length)
	for i := len(b) - 1; i >= 0; i-- {
		var d uint64
		uid, d = divmod(uid, base)
		b[i] = abc.symbols[d]
	}

	return string(b)
}

// DecodeK decodes identifier from string of exactly EncodedLen symbols.
func (codec *Codec) DecodeK(encoded string) (K, error) {
	abc := codec.alphabet
	base := uint64(len(abc.symbols))

	if n := utf8.RuneCountInString(encoded); n != abc.length {
		return K{}, fmt.Errorf("%w: %d symbols, expected %d", ErrInvalidLength, n, abc.length)
	}

	var uid K
	for _, r := range encoded {
		d, has := abc.index[r]
		if !has {
			return K{}, fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, r, encoded)
		}

		var ok bool
		if uid, ok = muladd(uid, base, d); !ok {
			return K{}, fmt.Errorf("%w: %q", ErrOverflow, encoded)
		}
	}

	return uid, nil
}

// Encode identifier given in canonical form. Skipping validation trusts
// the input structure, only hex digits are decoded.
func (codec *Codec) Encode(id string, skipValidation bool) (string, error) {
	read := Parse
	if skipValidation {
		read = parse
	}

	uid, err := read(id)
	if err != nil {
		return "", err
	}

	return codec.EncodeK(uid), nil
}

// Decode encoded identifier to canonical form. Invalid length is always
// reported. Other failures are reported only if throwOnInvalid is set,
// otherwise the empty string is returned as "no value".
func (codec *Codec) Decode(encoded string, throwOnInvalid bool) (string, error) {
	uid, err := codec.DecodeK(encoded)
	switch {
	case err == nil:
		return String(uid), nil
	case throwOnInvalid || errors.Is(err, ErrInvalidLength):
		return "", err
	default:
		return "", nil
	}
}

// Valid checks that encoded identifier has valid length and symbols and
// fits 128-bit
func (codec *Codec) Valid(encoded string) bool {
	_, err := codec.DecodeK(encoded)
	return err == nil
}

// default Base58 codec
var base58 = MustCodec()

// ToBase58 encodes identifier given in canonical form with Base58 alphabet
func ToBase58(id string) (string, error) {
	return base58.Encode(id, false)
}

// FromBase58 decodes Base58 identifier to canonical form
func FromBase58(encoded string, throwOnInvalid bool) (string, error) {
	return base58.Decode(encoded, throwOnInvalid)
}
