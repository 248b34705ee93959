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
	"github.com/pkg/errors"

	"github.com/arlc-project/arlc/internal"
	"github.com/arlc-project/arlc/ring"
	"github.com/arlc-project/arlc/sample"
)

// PublicKey is the pair (A, b). A is carried by reference to the
// parameter set it was generated under; B is the per-keypair public
// vector.
type PublicKey struct {
	Params *Params
	B      ring.Vector
}

// SecretKey is the length-n vector s, a small signed integer vector.
// Call Zeroize when the key is no longer needed (see secret.go).
type SecretKey struct {
	S ring.Vector
}

// GenerateKeypair runs keygen: draw s and e from the error
// distribution, derive b = A*s + e mod q, and return the pair
// (PublicKey{A, b}, SecretKey{s}). The error term e is sensitive
// scratch material like s; once it has been folded into b it is
// zeroized in place.
//
// It returns internal.ErrRandomnessFailure (wrapped) if rng cannot
// supply the bytes the error sampler needs.
func GenerateKeypair(p *Params, rng randReader) (*PublicKey, *SecretKey, error) {
	errSampler := sample.NewError(p.Eta)

	s, err := ring.NewRandomVector(p.N, rng, errSampler)
	if err != nil {
		return nil, nil, errors.Wrapf(internal.ErrRandomnessFailure, "arlc: keygen failed to sample the secret key: %v", err)
	}

	e, err := ring.NewRandomVector(p.M, rng, errSampler)
	if err != nil {
		return nil, nil, errors.Wrapf(internal.ErrRandomnessFailure, "arlc: keygen failed to sample the error term: %v", err)
	}

	as, err := p.A.MulVec(s)
	if err != nil {
		return nil, nil, errors.Wrap(err, "arlc: keygen failed to compute A*s")
	}

	b := as.Add(e).Mod(p.Q)
	zeroizeScratch(e)

	return &PublicKey{Params: p, B: b}, &SecretKey{S: s}, nil
}
