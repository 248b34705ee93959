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
)

// TestCodec_IdentityWithoutNoise verifies decode(encode(m)) = m for
// every m in [0, p).
func TestCodec_IdentityWithoutNoise(t *testing.T) {
	p := &Params{Q: 1024, P: 8, Delta: 128}

	for m := int64(0); m < p.P; m++ {
		scaled, err := p.encode(m)
		assert.NoError(t, err)
		assert.Equal(t, m, p.decode(scaled), "round trip failed for symbol %d", m)
	}
}

func TestCodec_EncodeRejectsOutOfRange(t *testing.T) {
	p := &Params{Q: 1024, P: 8, Delta: 128}

	_, err := p.encode(8)
	assert.Error(t, err)

	_, err = p.encode(-1)
	assert.Error(t, err)
}

// TestCodec_DecodeToleratesNoiseUnderHalfDelta exercises the
// correctness claim decode(encode(m) + noise) = m whenever
// |noise| < delta/2.
func TestCodec_DecodeToleratesNoiseUnderHalfDelta(t *testing.T) {
	p := &Params{Q: 1024, P: 8, Delta: 128}

	for m := int64(0); m < p.P; m++ {
		scaled, err := p.encode(m)
		assert.NoError(t, err)

		for noise := int64(-63); noise <= 63; noise++ {
			noisy := ((scaled+noise)%p.Q + p.Q) % p.Q
			assert.Equal(t, m, p.decode(noisy), "symbol %d, noise %d", m, noise)
		}
	}
}

func TestRoundDiv_TiesAwayFromZero(t *testing.T) {
	assert.Equal(t, int64(1), roundDiv(64, 128))
	assert.Equal(t, int64(0), roundDiv(63, 128))
	assert.Equal(t, int64(2), roundDiv(192, 128))
}
