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

/*
Package seuid implements sequential unique identifiers: 128-bit values
ordered by creation time and statistically unique across millisecond
boundaries, with reversible compact encoding over an arbitrary alphabet.

# Identity Schema

A fixed size of 128-bit is used to implement identity schema

	   48 bit            80 bit
	|----------|-------------------|
	    ⟨𝒕⟩              ⟨𝒆⟩

↣ ⟨𝒕⟩ is 48-bit UTC timestamp with millisecond precision, it lasts until
year 10889.

↣ ⟨𝒆⟩ is 80-bit of entropy. It is drawn from cryptographic random generator
when millisecond changes. Identifiers generated within the same millisecond
increment ⟨𝒆⟩ by one, so they are strictly ordered. The increment wraps to
zero after 2⁸⁰ − 1, the only case when ordering is broken.

Read as big-endian integer ⟨𝒕‖𝒆⟩ identifiers are totally ordered. The
layout is bit compatible with ULID.

# Canonical form

Identifiers are interchanged as lowercase hex digits grouped 8-4-4-4-12,
e.g. 0186745f-ab2f-d8ad-6ccf-b851f77e2173. The form is RFC 4122 shaped
but version and variant bits are not set.

# Encoded form

Codec re-encodes identifier into a string over alphabet of 16 to 64 unique
symbols. The length of encoded string is fixed by the alphabet: it is the
smallest L such that kᴸ > 2¹²⁸ − 1 for alphabet of k symbols. Base58
gives 22 symbols, e.g. 1BvaMwjnCjWp6PBqDb463t.

# Validation

Operations on textual identifiers either validate the input and fail fast
or trust it for throughput. Timestamp, Date and Codec.Encode accept
skipValidation flag, Codec.Decode accepts throwOnInvalid flag. Trusted input
degrades to sentinel values (NaT, zero time.Time, empty string) instead of
errors.

# Concurrency

Generator owns its state (⟨𝒕⟩ and ⟨𝒆⟩ of last identifier). Independent
generators do not coordinate. Calls to one generator are serialized.
Codec and accessor functions are stateless.

	gen := seuid.NewGenerator()
	id, err := gen.Generate()

	codec, err := seuid.NewCodec()
	short, err := codec.Encode(id, false)
*/
package seuid
