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

package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fogfish/seuid"
	"github.com/fogfish/seuid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	id       = "0186745f-ab2f-d8ad-6ccf-b851f77e2173"
	base58Id = "1BvaMwjnCjWp6PBqDb463t"
)

// execute runs the command line with default config, returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg := &config.Config{Alphabet: seuid.Base58, LogLevel: "info", LogFormat: "text"}
	return executeWith(t, cfg, args...)
}

func executeWith(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var stdout, stderr bytes.Buffer
	err := run(args, cfg, log, &stdout, &stderr, func(int) {})
	return stdout.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestGen(t *testing.T) {
	out, err := execute(t, "gen", "-n", "5")
	require.NoError(t, err)

	ids := lines(out)
	require.Len(t, ids, 5)
	for i, x := range ids {
		assert.True(t, seuid.Valid(x), "invalid id %q", x)
		if i > 0 {
			assert.Less(t, ids[i-1], x)
		}
	}
}

func TestGenSeed(t *testing.T) {
	out, err := execute(t, "gen", "--seed", "1676989672239", "-n", "3")
	require.NoError(t, err)

	for _, x := range lines(out) {
		assert.True(t, strings.HasPrefix(x, "0186745f-ab2f-"), x)
	}
}

func TestGenEncode(t *testing.T) {
	out, err := execute(t, "gen", "-e", "-n", "2")
	require.NoError(t, err)

	codec := seuid.MustCodec()
	for _, x := range lines(out) {
		assert.Len(t, x, 22)
		assert.True(t, codec.Valid(x), x)
	}
}

func TestGenInvalidSeed(t *testing.T) {
	_, err := execute(t, "gen", "--seed", "abc")
	require.Error(t, err)

	tests := []struct {
		name string
		seed string
	}{
		{"negative", "-5"},
		{"too_large", "281474976710656"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "gen", "--seed="+tt.seed)
			require.Error(t, err)
			assert.True(t, errors.Is(err, seuid.ErrInvalidTimestamp))
		})
	}
}

func TestGenSeedZero(t *testing.T) {
	out, err := execute(t, "gen", "--seed", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "00000000-0000-"), out)
}

func TestTime(t *testing.T) {
	out, err := execute(t, "time", id)
	require.NoError(t, err)
	assert.Equal(t, "1676989672239\n", out)

	_, err = execute(t, "time", "not-a-valid-id")
	assert.True(t, errors.Is(err, seuid.ErrInvalidFormat))

	out, err = execute(t, "time", "--skip-validation", "not-a-valid-id")
	require.NoError(t, err)
	assert.Equal(t, "NaN\n", out)
}

func TestDate(t *testing.T) {
	out, err := execute(t, "date", id)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-21T14:27:52.239Z\n", out)

	out, err = execute(t, "date", "--skip-validation", "invalid")
	require.NoError(t, err)
	assert.Equal(t, "Invalid Date\n", out)
}

func TestEncodeDecode(t *testing.T) {
	out, err := execute(t, "encode", id)
	require.NoError(t, err)
	assert.Equal(t, base58Id+"\n", out)

	out, err = execute(t, "decode", base58Id)
	require.NoError(t, err)
	assert.Equal(t, id+"\n", out)
}

func TestEncodeAlphabetFlag(t *testing.T) {
	out, err := execute(t, "--alphabet", seuid.Base32, "encode", id)
	require.NoError(t, err)
	assert.Equal(t, "01GST5ZASFV2PPSKXRA7VQW8BK\n", out)

	_, err = execute(t, "--alphabet", "ABC", "encode", id)
	assert.True(t, errors.Is(err, seuid.ErrInvalidAlphabetLength))
}

func TestAlphabetFlagOverridesConfig(t *testing.T) {
	cfg := &config.Config{Alphabet: "ABC", LogLevel: "info", LogFormat: "text"}

	out, err := executeWith(t, cfg, "--alphabet", seuid.Base58, "encode", id)
	require.NoError(t, err)
	assert.Equal(t, base58Id+"\n", out)

	out, err = executeWith(t, cfg, "time", id)
	require.NoError(t, err)
	assert.Equal(t, "1676989672239\n", out)

	_, err = executeWith(t, cfg, "encode", id)
	assert.True(t, errors.Is(err, seuid.ErrInvalidAlphabetLength))
}

func TestDecodeInvalid(t *testing.T) {
	out, err := execute(t, "decode", "0BvaMwjnCjWp6PBqDb463t")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	_, err = execute(t, "decode", "--strict", "0BvaMwjnCjWp6PBqDb463t")
	assert.True(t, errors.Is(err, seuid.ErrInvalidCharacter))

	_, err = execute(t, "decode", "short")
	assert.True(t, errors.Is(err, seuid.ErrInvalidLength))
}

func TestAlphabet(t *testing.T) {
	out, err := execute(t, "alphabet")
	require.NoError(t, err)
	assert.Equal(t, seuid.Base58+"\tbase=58\tlength=22\n", out)

	out, err = execute(t, "--alphabet", seuid.Base16, "alphabet")
	require.NoError(t, err)
	assert.Equal(t, seuid.Base16+"\tbase=16\tlength=32\n", out)
}

func TestULID(t *testing.T) {
	out, err := execute(t, "ulid", id)
	require.NoError(t, err)
	assert.Equal(t, "01GST5ZASFV2PPSKXRA7VQW8BK\n", out)

	out, err = execute(t, "ulid", "-r", "01GST5ZASFV2PPSKXRA7VQW8BK")
	require.NoError(t, err)
	assert.Equal(t, id+"\n", out)

	_, err = execute(t, "ulid", "-r", "not-a-ulid")
	assert.True(t, errors.Is(err, seuid.ErrInvalidFormat))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "seuid dev\n", out)
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")
	assert.Error(t, err)
}
