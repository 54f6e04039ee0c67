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

package seuid_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/seuid"
)

func TestParse(t *testing.T) {
	uid, err := seuid.Parse(id)
	ehi, elo := seuid.Entropy(uid)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(seuid.Time(uid), seed),
		it.Equal(ehi, 0xd8ad),
		it.Equal(elo, 0x6ccfb851f77e2173),
		it.Equal(uid.String(), id),
		it.True(seuid.Epoch(uid).Equal(date)),
	)

	_, err = seuid.Parse("invalid string")
	it.Then(t).Should(
		it.True(errors.Is(err, seuid.ErrInvalidFormat)),
	)
}

func TestParseLowercase(t *testing.T) {
	uid, err := seuid.Parse("0186745F-AB2F-D8AD-6CCF-B851F77E2173")

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(seuid.String(uid), id),
	)
}

func TestCompare(t *testing.T) {
	a, _ := seuid.Parse("0186745f-ab2f-d8ad-6ccf-b851f77e2173")
	b, _ := seuid.Parse("0186745f-ab2f-d8ad-6ccf-b851f77e2174")
	c, _ := seuid.Parse("0186745f-ab30-0000-0000-000000000000")

	it.Then(t).Should(
		it.Equal(seuid.Compare(a, a), 0),
		it.Equal(seuid.Compare(a, b), -1),
		it.Equal(seuid.Compare(b, a), 1),
		it.Equal(seuid.Compare(b, c), -1),
		it.True(seuid.Equal(a, a)),
		it.True(!seuid.Equal(a, b)),
		it.True(seuid.Before(a, c)),
		it.True(seuid.After(c, b)),
	)
}

func TestBytes(t *testing.T) {
	uid, _ := seuid.Parse(id)
	b := seuid.Bytes(uid)
	x, err := seuid.FromBytes(b)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(len(b), 16),
		it.Equal(b[0], 0x01),
		it.Equal(b[15], 0x73),
		it.True(seuid.Equal(uid, x)),
	)

	_, err = seuid.FromBytes(b[1:])
	it.Then(t).Should(
		it.True(errors.Is(err, seuid.ErrInvalidLength)),
	)
}

func TestJSONCodec(t *testing.T) {
	type MyStruct struct {
		ID seuid.K `json:"id"`
	}

	g := seuid.NewGenerator()
	uid, _ := g.K()
	val := MyStruct{uid}
	b, err := json.Marshal(val)
	it.Then(t).Should(
		it.Nil(err),
		it.Equal(string(b), `{"id":"`+uid.String()+`"}`),
	)

	var x MyStruct
	err = json.Unmarshal(b, &x)
	it.Then(t).Should(
		it.Nil(err),
		it.True(seuid.Equal(val.ID, x.ID)),
	)

	err = json.Unmarshal([]byte(`{"id":"invalid string"}`), &x)
	it.Then(t).Should(
		it.True(errors.Is(err, seuid.ErrInvalidFormat)),
	)
}

func TestTextCodec(t *testing.T) {
	uid, _ := seuid.Parse(id)
	b, err := uid.MarshalText()

	var x seuid.K
	errx := x.UnmarshalText(b)

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(errx),
		it.Equal(string(b), id),
		it.True(seuid.Equal(uid, x)),
	)
}
