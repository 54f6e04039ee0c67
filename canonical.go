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
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// canonical form of identifier, hex digits are case-insensitive
var canonical = regexp.MustCompile(`^[0-9a-fA-F]{8}-(?:[0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}$`)

// Valid checks that id is canonical 8-4-4-4-12 hex form of identifier
func Valid(id string) bool { return canonical.MatchString(id) }

// String encodes identifier to canonical form, lowercase hex grouped as
// 8-4-4-4-12. The form is RFC 4122 shaped but version and variant bits are
// not set.
func String(uid K) string {
	var u uuid.UUID
	copy(u[:], Bytes(uid))
	return u.String()
}

// Parse decodes identifier from canonical form
func Parse(id string) (K, error) {
	if !Valid(id) {
		return K{}, fmt.Errorf("%w: %q", ErrInvalidFormat, id)
	}

	return parse(id)
}

// parse decodes hex digits of identifier without structural check,
// hyphens are ignored
func parse(id string) (K, error) {
	u, err := uuid.Parse(strings.ReplaceAll(id, "-", ""))
	if err != nil {
		return K{}, fmt.Errorf("%w: %q", ErrInvalidFormat, id)
	}

	return FromBytes(u[:])
}
