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

package lwe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlc-project/arlc/lwe"
	"github.com/arlc-project/arlc/lwe/lwetest"
)

func TestNewParams_Valid(t *testing.T) {
	p, err := lwe.NewParams(lwe.Literal{
		N: 16, M: 32, Q: 1024, Eta: 2, P: 8, Delta: 128, RWeight: 8,
	}, lwetest.SeedReader(1))
	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.True(t, p.A.CheckDims(32, 16))
}

func TestNewParams_QMustEqualDeltaTimesP(t *testing.T) {
	_, err := lwe.NewParams(lwe.Literal{
		N: 16, M: 32, Q: 1000, Eta: 2, P: 8, Delta: 128, RWeight: 8,
	}, lwetest.SeedReader(1))
	assert.Error(t, err)
}

func TestNewParams_RWeightOutOfRange(t *testing.T) {
	_, err := lwe.NewParams(lwe.Literal{
		N: 16, M: 32, Q: 1024, Eta: 2, P: 8, Delta: 128, RWeight: 33,
	}, lwetest.SeedReader(1))
	assert.Error(t, err)

	_, err = lwe.NewParams(lwe.Literal{
		N: 16, M: 32, Q: 1024, Eta: 2, P: 8, Delta: 128, RWeight: 0,
	}, lwetest.SeedReader(1))
	assert.Error(t, err)
}

func TestNewParams_CorrectnessMarginViolated(t *testing.T) {
	// (r_weight+1)*eta = 17*8 = 136, not strictly below delta/2 = 64.
	_, err := lwe.NewParams(lwe.Literal{
		N: 16, M: 32, Q: 1024, Eta: 8, P: 8, Delta: 128, RWeight: 16,
	}, lwetest.SeedReader(1))
	assert.Error(t, err)
}

func TestLegacyUnsafeParams_AlwaysFailsValidation(t *testing.T) {
	_, err := lwe.LegacyUnsafeParams(lwetest.SeedReader(1))
	assert.Error(t, err, "the original defaults are not decryption-correct; see the open question in DESIGN.md")
}

func TestDefaultParams_Valid(t *testing.T) {
	p, err := lwe.DefaultParams(lwetest.SeedReader(42))
	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, p.Delta*p.P, p.Q)
}

func TestNewParams_SameSeedSameMatrix(t *testing.T) {
	lit := lwe.Literal{N: 8, M: 16, Q: 1024, Eta: 2, P: 8, Delta: 128, RWeight: 4, Seed: []byte("a-fixed-seed-value")}

	p1, err := lwe.NewParams(lit, lwetest.SeedReader(1))
	assert.NoError(t, err)
	p2, err := lwe.NewParams(lit, lwetest.SeedReader(2))
	assert.NoError(t, err)

	assert.Equal(t, p1.A, p2.A, "same seed must expand to the same public matrix regardless of rng")
}
