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

package sample

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Sparse samples a binary vector of length m with exactly weight ones,
// used as the encryption ephemeral r. The distribution is equivalent
// to choosing a uniformly random size-weight subset of {0, ..., m-1}:
// every subset of that size is equally likely.
type Sparse struct {
	m      int
	weight int
}

// NewSparse returns a Sparse sampler for length-m vectors with exactly
// weight ones. It panics if weight is out of [0, m] -- parameter
// validation (lwe.Params) is responsible for rejecting such tuples
// before a Sparse sampler is ever constructed.
func NewSparse(m, weight int) *Sparse {
	if weight < 0 || weight > m {
		panic("sample: sparse weight out of range")
	}
	return &Sparse{m: m, weight: weight}
}

// Sample draws a length-m binary vector with exactly weight ones,
// reading randomness from rng. It implements a partial Fisher-Yates
// shuffle over the index set {0, ..., m-1}: the first `weight` slots of
// the shuffled permutation name the positions set to one.
func (s *Sparse) Sample(rng io.Reader) ([]int64, error) {
	indices := make([]int, s.m)
	for i := range indices {
		indices[i] = i
	}

	for i := 0; i < s.weight; i++ {
		span := big.NewInt(int64(s.m - i))
		j, err := rand.Int(rng, span)
		if err != nil {
			return nil, errors.Wrap(err, "sparse sampler: randomness source failed")
		}
		k := i + int(j.Int64())
		indices[i], indices[k] = indices[k], indices[i]
	}

	vec := make([]int64, s.m)
	for _, idx := range indices[:s.weight] {
		vec[idx] = 1
	}

	return vec, nil
}
