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

import "errors"

// Errors returned by the library. Each is wrapped with the offending input,
// use errors.Is to match.
var (
	// seed (or clock) is out of [0, MaxTimestamp]
	ErrInvalidTimestamp = errors.New("seuid: invalid timestamp")

	// input is not a canonical 8-4-4-4-12 hex identifier
	ErrInvalidFormat = errors.New("seuid: invalid format")

	// alphabet must contain from 16 to 64 symbols
	ErrInvalidAlphabetLength = errors.New("seuid: invalid alphabet length")

	// alphabet symbols must be unique
	ErrDuplicateAlphabetSymbol = errors.New("seuid: duplicate alphabet symbol")

	// encoded identifier length does not match the alphabet
	ErrInvalidLength = errors.New("seuid: invalid length")

	// encoded identifier contains symbol outside of the alphabet
	ErrInvalidCharacter = errors.New("seuid: invalid character")

	// encoded identifier exceeds 128-bit
	ErrOverflow = errors.New("seuid: value overflows 128-bit")
)
