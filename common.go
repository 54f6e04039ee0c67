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

import "math/bits"

// maximum 128-bit value, ffffffff-ffff-ffff-ffff-ffffffffffff
var maxK = K{hi: ^uint64(0), lo: ^uint64(0)}

func isZero(uid K) bool { return uid.hi == 0 && uid.lo == 0 }

// divmod divides 128-bit value by base, returns quotient and remainder.
//
//	hi / base -> qhi, r
//	(r, lo) / base -> qlo, rem
//
// Note: r < base always, so bits.Div64 never panics.
func divmod(uid K, base uint64) (K, uint64) {
	qhi, r := bits.Div64(0, uid.hi, base)
	qlo, rem := bits.Div64(r, uid.lo, base)
	return K{hi: qhi, lo: qlo}, rem
}

// muladd computes uid * base + digit, ok is false on 128-bit overflow.
func muladd(uid K, base, digit uint64) (K, bool) {
	carry, lo := bits.Mul64(uid.lo, base)
	over, hi := bits.Mul64(uid.hi, base)
	if over != 0 {
		return K{}, false
	}

	hi, c := bits.Add64(hi, carry, 0)
	if c != 0 {
		return K{}, false
	}

	lo, c = bits.Add64(lo, digit, 0)
	hi, c = bits.Add64(hi, 0, c)
	if c != 0 {
		return K{}, false
	}

	return K{hi: hi, lo: lo}, true
}

// digits counts number of base digits required to represent the value
func digits(uid K, base uint64) int {
	n := 0
	for !isZero(uid) {
		uid, _ = divmod(uid, base)
		n++
	}
	return n
}
