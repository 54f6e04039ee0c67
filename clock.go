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
	"io"
	"time"
)

// Config option of generator behavior. Config options allows to define
// custom strategies to read ⟨𝒕⟩ timestamp or ⟨𝒆⟩ entropy.
type Config func(*Generator)

// WithClock configures a custom timestamp generator function, the function
// returns milliseconds since Unix epoch.
func WithClock(ticker func() int64) Config {
	return func(g *Generator) {
		g.ticker = ticker
	}
}

// WithClockUnix configures unix timestamp time.Now().UnixMilli() as
// generator function
func WithClockUnix() Config {
	return func(g *Generator) {
		g.ticker = unixtime
	}
}

func unixtime() int64 {
	return time.Now().UnixMilli()
}

// WithEntropy configures source of ⟨𝒆⟩ entropy. The reader is consumed
// 10 bytes at a time each time the millisecond changes.
func WithEntropy(entropy io.Reader) Config {
	return func(g *Generator) {
		g.entropy = entropy
	}
}

// WithEntropyCrypto configures cryptographic random generator as source of
// ⟨𝒆⟩ entropy
func WithEntropyCrypto() Config {
	return func(g *Generator) {
		g.entropy = rand.Reader
	}
}

// zero is entropy source of mock generator
type zero struct{}

func (zero) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 0
	}
	return len(b), nil
}

// NewGeneratorMock creates generator with frozen clock and zero entropy.
// Options are applied on top of mock defaults.
func NewGeneratorMock(opts ...Config) *Generator {
	g := &Generator{
		ticker:  func() int64 { return 0 },
		entropy: zero{},
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}
