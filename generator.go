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
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

// Generator of sequential identifiers. Identifiers generated within same
// millisecond are strictly increasing: ⟨𝒆⟩ is incremented by one instead of
// drawn from entropy source. ⟨𝒆⟩ wraps to zero after 2⁸⁰ − 1 increments,
// which breaks ordering of that millisecond.
//
// The generator owns its state, independent instances do not share it.
// Calls to the same instance are serialized. The zero value is ready to use,
// it reads unix clock and cryptographic random generator.
type Generator struct {
	mu      sync.Mutex
	ticker  func() int64
	entropy io.Reader

	// ⟨𝒕⟩ of last identifier, valid once seeded
	seeded bool
	last   int64

	// ⟨𝒆⟩ of last identifier
	ehi uint16
	elo uint64
}

// NewGenerator creates generator, by default it uses unix clock and
// cryptographic random generator.
func NewGenerator(opts ...Config) *Generator {
	g := &Generator{}
	defopt := []Config{WithClockUnix(), WithEntropyCrypto()}

	for _, opt := range append(defopt, opts...) {
		opt(g)
	}
	return g
}

// K generates new identifier. Optional seed overrides ⟨𝒕⟩, it must be in
// [0, MaxTimestamp].
func (g *Generator) K(seed ...int64) (K, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now(seed)
	if t < 0 || t > MaxTimestamp {
		return K{}, fmt.Errorf("%w: %d exceeds [0, %d]", ErrInvalidTimestamp, t, MaxTimestamp)
	}

	if g.seeded && t == g.last {
		g.elo++
		if g.elo == 0 {
			// overflow at 2⁸⁰ − 1 wraps ⟨𝒆⟩ to zero
			g.ehi++
		}
		return mkK(t, g.ehi, g.elo), nil
	}

	entropy := g.entropy
	if entropy == nil {
		entropy = rand.Reader
	}

	var b [10]byte
	if _, err := io.ReadFull(entropy, b[:]); err != nil {
		return K{}, fmt.Errorf("seuid: entropy source failed: %w", err)
	}

	g.seeded = true
	g.last = t
	g.ehi = uint16(b[0])<<8 | uint16(b[1])
	g.elo = 0
	for _, x := range b[2:] {
		g.elo = g.elo<<8 | uint64(x)
	}

	return mkK(t, g.ehi, g.elo), nil
}

// Generate new identifier in canonical form
func (g *Generator) Generate(seed ...int64) (string, error) {
	uid, err := g.K(seed...)
	if err != nil {
		return "", err
	}

	return String(uid), nil
}

func (g *Generator) now(seed []int64) int64 {
	if len(seed) > 0 {
		return seed[0]
	}

	if g.ticker == nil {
		return unixtime()
	}
	return g.ticker()
}
