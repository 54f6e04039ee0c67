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
	"strconv"
	"strings"
	"time"
)

// Timestamp returns ⟨𝒕⟩ of identifier given in canonical form, milliseconds
// since Unix epoch.
//
// Skipping validation reads 12 leading hex digits of trusted input as is.
// Malformed input gives NaT instead of error.
func Timestamp(id string, skipValidation bool) (int64, error) {
	if !skipValidation && !Valid(id) {
		return NaT, fmt.Errorf("%w: %q", ErrInvalidFormat, id)
	}

	return timestamp(id), nil
}

func timestamp(id string) int64 {
	if len(id) > 13 {
		id = id[:13]
	}

	t, err := strconv.ParseInt(strings.Replace(id, "-", "", 1), 16, 64)
	if err != nil || t < 0 {
		return NaT
	}
	return t
}

// Date returns ⟨𝒕⟩ of identifier given in canonical form as UTC time.
//
// Skipping validation on malformed input gives zero time.Time instead of
// error.
func Date(id string, skipValidation bool) (time.Time, error) {
	t, err := Timestamp(id, skipValidation)
	if err != nil {
		return time.Time{}, err
	}

	if t == NaT {
		return time.Time{}, nil
	}

	return time.UnixMilli(t).UTC(), nil
}
