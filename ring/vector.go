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

// Package ring implements the modular integer substrate ARLC is built
// on: vectors and matrices of ring elements, reduced modulo q, with the
// arithmetic needed by keygen, encryption and decryption.
//
// Elements are plain int64. For the parameter ranges this scheme is
// defined over, m*(q-1)^2 fits comfortably under 2^63, so a 64-bit
// signed accumulator never overflows during a dot product; callers
// constructing larger parameter sets are responsible for re-checking
// that bound, which the parameter validation in package lwe does not
// check.
package ring

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/arlc-project/arlc/sample"
)

// Vector wraps a slice of ring elements.
type Vector []int64

// NewVector returns a new Vector instance.
func NewVector(coords []int64) Vector {
	return Vector(coords)
}

// NewRandomVector returns a new Vector of length n with elements drawn
// independently from sampler, reading randomness from rng.
func NewRandomVector(n int, rng io.Reader, sampler sample.Sampler) (Vector, error) {
	vec := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := sampler.Sample(rng)
		if err != nil {
			return nil, errors.Wrap(err, "ring: failed to sample random vector")
		}
		vec[i] = v
	}

	return NewVector(vec), nil
}

// Copy returns a new Vector with the same elements as v.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)
	return newVec
}

// Mod reduces every element of v into the canonical residue system
// [0, q): ((x mod q) + q) mod q.
func (v Vector) Mod(q int64) Vector {
	res := make(Vector, len(v))
	for i, c := range v {
		res[i] = Reduce(c, q)
	}
	return res
}

// Add adds vectors v and other element-wise.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))
	for i, c := range v {
		sum[i] = c + other[i]
	}
	return sum
}

// Sub subtracts other from v element-wise.
func (v Vector) Sub(other Vector) Vector {
	diff := make(Vector, len(v))
	for i, c := range v {
		diff[i] = c - other[i]
	}
	return diff
}

// MulScalar multiplies every element of v by x.
func (v Vector) MulScalar(x int64) Vector {
	res := make(Vector, len(v))
	for i, c := range v {
		res[i] = c * x
	}
	return res
}

// Apply applies an element-wise function f to vector v.
func (v Vector) Apply(f func(int64) int64) Vector {
	res := make(Vector, len(v))
	for i, c := range v {
		res[i] = f(c)
	}
	return res
}

// Dot calculates the dot product (inner product) of vectors v and
// other. It returns an error if the vectors differ in length.
func (v Vector) Dot(other Vector) (int64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("ring: vectors should be of same length, got %d and %d", len(v), len(other))
	}

	var prod int64
	for i, c := range v {
		prod += c * other[i]
	}

	return prod, nil
}

// CheckBound checks whether the absolute values of all elements of v
// are strictly smaller than bound. It returns an error otherwise.
func (v Vector) CheckBound(bound int64) error {
	for _, c := range v {
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs >= bound {
			return fmt.Errorf("ring: all coordinates of a vector should be smaller than %d", bound)
		}
	}
	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	s := ""
	for _, c := range v {
		s = fmt.Sprintf("%s %d", s, c)
	}
	return s
}

// Reduce returns x reduced into the canonical residue system [0, q).
func Reduce(x, q int64) int64 {
	r := x % q
	if r < 0 {
		r += q
	}
	return r
}
