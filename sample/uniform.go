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

// Uniform samples ring elements uniformly from the interval [0, max).
// Used in tests to draw arbitrary ring elements; the public matrix A
// is not drawn with it but expanded from a seed (lwe.ExpandMatrix).
type Uniform struct {
	max *big.Int
}

// NewUniform returns a Uniform sampler bounded by max (exclusive).
func NewUniform(max int64) *Uniform {
	return &Uniform{max: big.NewInt(max)}
}

// Sample draws a single value uniformly from [0, max), reading
// randomness from rng. Rejection sampling (via crypto/rand.Int) keeps
// the distribution exactly uniform regardless of max's bit length.
func (u *Uniform) Sample(rng io.Reader) (int64, error) {
	n, err := rand.Int(rng, u.max)
	if err != nil {
		return 0, errors.Wrap(err, "uniform sampler: randomness source failed")
	}
	return n.Int64(), nil
}
