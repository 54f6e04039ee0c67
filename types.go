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
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"
)

// MaxTimestamp is the largest ⟨𝒕⟩ fraction, 2⁴⁸ − 1 ms (year 10889).
const MaxTimestamp int64 = 1<<48 - 1

// NaT (not a timestamp) is returned by Timestamp when validation is skipped
// and the input cannot be read.
const NaT int64 = -1

// K is native representation of 128-bit sequential identifier.
//
//	   48 bit            80 bit
//	|----------|-------------------|
//	    ⟨𝒕⟩              ⟨𝒆⟩
//
// hi holds ⟨𝒕⟩ and 16 high bits of ⟨𝒆⟩, lo holds 64 low bits of ⟨𝒆⟩.
type K struct{ hi, lo uint64 }

func mkK(t int64, ehi uint16, elo uint64) K {
	return K{hi: uint64(t)<<16 | uint64(ehi), lo: elo}
}

// Time returns ⟨𝒕⟩ timestamp fraction of identifier, milliseconds since
// Unix epoch.
func Time(uid K) int64 { return int64(uid.hi >> 16) }

// Epoch converts ⟨𝒕⟩ timestamp fraction of identifier to UTC time.
func Epoch(uid K) time.Time { return time.UnixMilli(Time(uid)).UTC() }

// Entropy returns ⟨𝒆⟩ fraction of identifier as 16 high and 64 low bits.
func Entropy(uid K) (uint16, uint64) { return uint16(uid.hi), uid.lo }

// Equal compares identifiers, returns true if values are equal
func Equal(a, b K) bool { return a.hi == b.hi && a.lo == b.lo }

// Compare returns -1, 0, +1 following big-endian order of ⟨𝒕‖𝒆⟩
func Compare(a, b K) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	default:
		return 0
	}
}

// Before checks if identifier a is generated before b
func Before(a, b K) bool { return Compare(a, b) < 0 }

// After checks if identifier a is generated after b
func After(a, b K) bool { return Compare(a, b) > 0 }

// Bytes encodes identifier to 16 bytes, big-endian
func Bytes(uid K) []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[0:8], uid.hi)
	binary.BigEndian.PutUint64(b[8:16], uid.lo)
	return b
}

// FromBytes decodes identifier from 16 bytes, big-endian
func FromBytes(b []byte) (K, error) {
	if len(b) != 16 {
		return K{}, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(b))
	}

	return K{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

// String encodes identifier to canonical form
func (uid K) String() string { return String(uid) }

// MarshalText encodes identifier to canonical form
func (uid K) MarshalText() ([]byte, error) { return []byte(String(uid)), nil }

// UnmarshalText decodes identifier from canonical form
func (uid *K) UnmarshalText(b []byte) (err error) {
	*uid, err = Parse(string(b))
	return
}

// MarshalJSON encodes identifier to JSON string of canonical form
func (uid K) MarshalJSON() ([]byte, error) {
	return json.Marshal(String(uid))
}

// UnmarshalJSON decodes identifier from JSON string of canonical form
func (uid *K) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	*uid, err = Parse(val)
	return
}
