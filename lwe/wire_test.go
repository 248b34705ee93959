/*
 * Copyright (c) 2024 ARLC Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lwe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementWidth_PowerOfTwoModulus(t *testing.T) {
	p := &Params{Q: 32768} // 2^15, 15 bits -> 2 bytes
	assert.Equal(t, 2, p.elementWidth())

	p = &Params{Q: 262144} // 2^18, 18 bits -> 3 bytes
	assert.Equal(t, 3, p.elementWidth())
}

func TestElementWidth_NonPowerOfTwoModulus(t *testing.T) {
	p := &Params{Q: 1000} // 1000 needs 10 bits -> 2 bytes
	assert.Equal(t, 2, p.elementWidth())
}

func TestMarshalUnmarshalCiphertext_EmptyRoundTrips(t *testing.T) {
	p := &Params{Q: 1024, N: 4}
	data, err := p.MarshalCiphertext(Ciphertext{})
	require.NoError(t, err)
	assert.Empty(t, data)

	ct, err := p.UnmarshalCiphertext(data)
	require.NoError(t, err)
	assert.Empty(t, ct)
}

func TestMarshalCiphertext_RejectsWrongUShape(t *testing.T) {
	p := &Params{Q: 1024, N: 4}
	bad := Ciphertext{{U: []int64{1, 2}, V: 5}}

	_, err := p.MarshalCiphertext(bad)
	assert.Error(t, err)
}

func TestUnmarshalCiphertext_RejectsOutOfRangeElement(t *testing.T) {
	p := &Params{Q: 16, N: 1} // 4-bit elements, 1 byte/element
	ct := Ciphertext{{U: []int64{3}, V: 5}}

	data, err := p.MarshalCiphertext(ct)
	require.NoError(t, err)

	// Corrupt V to a value that is representable in the wire width
	// but outside [0, q).
	data[len(data)-1] = 200

	_, err = p.UnmarshalCiphertext(data)
	assert.Error(t, err)
}

func TestUnmarshalCiphertext_RejectsTruncatedLength(t *testing.T) {
	p := &Params{Q: 1024, N: 4}
	_, err := p.UnmarshalCiphertext([]byte{1, 2, 3})
	assert.Error(t, err)
}
