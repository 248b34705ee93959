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
	"io"

	"github.com/pkg/errors"

	"github.com/arlc-project/arlc/internal"
	"github.com/arlc-project/arlc/ring"
)

// Literal is an unchecked, user-facing representation of an ARLC
// parameter tuple, expressed with named fields. Pass a Literal to
// NewParams to obtain a validated Params. NewParams uses the fields as
// given: a zero-valued field is not replaced by a default and fails
// validation where zero is out of range (DefaultParams supplies the
// recommended values).
type Literal struct {
	N        int   // secret dimension
	M        int   // sample count, rows of A
	Q        int64 // ring modulus
	Eta      int64 // error magnitude bound
	P        int64 // symbol alphabet size
	Delta    int64 // scaling factor, must equal Q / P exactly
	RWeight  int   // Hamming weight of encryption randomness
	Seed     []byte // seed A is expanded from; a random seed is drawn if empty
}

// Params is a validated ARLC parameter set. It is immutable after
// construction.
type Params struct {
	N       int
	M       int
	Q       int64
	Eta     int64
	P       int64
	Delta   int64
	RWeight int

	// A is the public m*n matrix, expanded deterministically from Seed
	// (see expand.go). It is shared, read-only, and safe to use from
	// multiple goroutines concurrently.
	A    ring.Matrix
	Seed []byte
}

// defaultLiteral carries the original parameter defaults. It is
// intentionally NOT decryption-correct (see DESIGN.md, "Open
// Questions" and LegacyUnsafeParams below): r_weight*eta = 256 exceeds
// delta/2 = 64. NewParams rejects it; it is kept only so that
// LegacyUnsafeParams can demonstrate, by construction, why the
// tightened margin in DefaultParams exists.
var defaultLiteral = Literal{
	N:       256,
	M:       512,
	Q:       32768,
	Eta:     4,
	P:       256,
	Delta:   128,
	RWeight: 64,
}

// correctedLiteral widens the scaling factor so the correctness margin
// holds with room to spare: (r_weight+1)*eta = 260 < delta/2 = 512.
var correctedLiteral = Literal{
	N:       256,
	M:       512,
	Q:       262144,
	Eta:     4,
	P:       256,
	Delta:   1024,
	RWeight: 64,
}

// DefaultParams returns the recommended ARLC parameter set: the
// original defaults with the scaling factor widened to satisfy the
// correctness margin (see DESIGN.md's resolution of the "Correctness
// margin" open question). A is expanded from a freshly drawn random
// seed.
func DefaultParams(rng randReader) (*Params, error) {
	return NewParams(correctedLiteral, rng)
}

// LegacyUnsafeParams returns the original parameter defaults,
// unmodified. It always fails validation with
// internal.ErrInvalidParameters, because r_weight*eta exceeds delta/2:
// this function exists to document the open question, not to be used.
func LegacyUnsafeParams(rng randReader) (*Params, error) {
	return NewParams(defaultLiteral, rng)
}

// randReader is the minimal randomness-source contract every
// operation in this package depends on. It is satisfied by
// crypto/rand.Reader and by any seeded deterministic reader (see
// lwetest.SeedReader) used in tests.
type randReader interface {
	Read(p []byte) (n int, err error)
}

// NewParams validates lit against the scheme's parameter invariants
// and expands the public matrix A from lit.Seed (or from a fresh seed
// drawn via rng, if lit.Seed is empty). It returns
// internal.ErrInvalidParameters if any invariant is violated.
func NewParams(lit Literal, rng randReader) (*Params, error) {
	p := &Params{
		N:       lit.N,
		M:       lit.M,
		Q:       lit.Q,
		Eta:     lit.Eta,
		P:       lit.P,
		Delta:   lit.Delta,
		RWeight: lit.RWeight,
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	seed := lit.Seed
	if len(seed) == 0 {
		var err error
		seed, err = randomSeed(rng)
		if err != nil {
			return nil, errors.Wrap(err, "arlc: failed to draw a seed for the public matrix")
		}
	}
	p.Seed = seed

	a, err := ExpandMatrix(seed, p.M, p.N, p.Q)
	if err != nil {
		return nil, errors.Wrap(err, "arlc: failed to expand the public matrix")
	}
	p.A = a

	return p, nil
}

// validate enforces the scheme's parameter invariants.
func (p *Params) validate() error {
	if p.N <= 0 || p.M <= 0 {
		return errors.Wrapf(internal.ErrInvalidParameters, "n and m must be positive, got n=%d m=%d", p.N, p.M)
	}
	if p.Q <= 0 || p.P <= 0 || p.Delta <= 0 || p.Eta < 0 {
		return errors.Wrapf(internal.ErrInvalidParameters, "q, p, delta must be positive and eta non-negative")
	}
	if p.Delta*p.P != p.Q {
		return errors.Wrapf(internal.ErrInvalidParameters, "q (%d) must equal delta (%d) * p (%d) exactly", p.Q, p.Delta, p.P)
	}
	if p.RWeight <= 0 || p.RWeight > p.M {
		return errors.Wrapf(internal.ErrInvalidParameters, "r_weight (%d) must satisfy 0 < r_weight <= m (%d)", p.RWeight, p.M)
	}
	if int64(p.RWeight+1)*p.Eta >= p.Delta/2 {
		return errors.Wrapf(internal.ErrInvalidParameters,
			"(r_weight+1)*eta (%d) must be strictly below delta/2 (%d) for the correctness margin to hold",
			int64(p.RWeight+1)*p.Eta, p.Delta/2)
	}
	return nil
}

// randomSeed draws a 32-byte seed from rng.
func randomSeed(rng randReader) ([]byte, error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, err
	}
	return seed, nil
}
