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

import "github.com/oklog/ulid/v2"

// ULID casts identifier to ULID. Both share the same 48-bit ⟨𝒕⟩ and 80-bit
// ⟨𝒆⟩ layout, the cast is lossless.
func ULID(uid K) (id ulid.ULID) {
	copy(id[:], Bytes(uid))
	return
}

// FromULID casts ULID to identifier
func FromULID(id ulid.ULID) K {
	uid, _ := FromBytes(id[:])
	return uid
}
