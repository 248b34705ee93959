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

package sample_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlc-project/arlc/sample"
)

func TestError_Bounds(t *testing.T) {
	eta := int64(4)
	sampler := sample.NewError(eta)

	for i := 0; i < 2000; i++ {
		v, err := sampler.Sample(rand.Reader)
		assert.NoError(t, err)
		assert.True(t, v >= -eta && v <= eta, "sampled value %d outside [-%d, %d]", v, eta, eta)
	}
}

func TestError_Distribution(t *testing.T) {
	eta := int64(4)
	sampler := sample.NewError(eta)

	counts := make(map[int64]int)
	const trials = 50000
	for i := 0; i < trials; i++ {
		v, err := sampler.Sample(rand.Reader)
		assert.NoError(t, err)
		counts[v]++
	}

	assert.Len(t, counts, int(2*eta+1), "every integer in [-eta, eta] should occur")

	expected := float64(trials) / float64(2*eta+1)
	for v, c := range counts {
		assert.InDeltaf(t, expected, float64(c), expected*0.15,
			"value %d occurred %d times, expected close to %f", v, c, expected)
	}
}
