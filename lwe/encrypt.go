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

// SymbolCiphertext is the pair (U, V) produced for a single plaintext
// symbol.
type SymbolCiphertext struct {
	U ring.Vector
	V int64
}

// Ciphertext is an ordered sequence of symbol ciphertexts. Order is
// significant: it is the decryption order.
type Ciphertext []SymbolCiphertext

// Encrypt runs encryption over a sequence of plaintext symbols, each
// in [0, p). A fresh sparse vector r is sampled
// independently per symbol; reusing r across symbols would break
// IND-CPA, so Encrypt never does.
//
// An empty plaintext yields an empty ciphertext. If any symbol lies
// outside [0, p), Encrypt fails fast with internal.ErrSymbolOutOfRange
// and emits no partial ciphertext.
func Encrypt(p *Params, pk *PublicKey, plaintext []int64, rng randReader) (Ciphertext, error) {
	for i, m := range plaintext {
		if m < 0 || m >= p.P {
			return nil, errors.Wrapf(internal.ErrSymbolOutOfRange, "arlc: encrypt: symbol %d at position %d is outside [0, %d)", m, i, p.P)
		}
	}

	if len(plaintext) == 0 {
		return Ciphertext{}, nil
	}

	sparse := sample.NewSparse(p.M, p.RWeight)
	aT, err := p.A.Transpose()
	if err != nil {
		return nil, errors.Wrap(err, "arlc: encrypt failed to transpose A")
	}

	ct := make(Ciphertext, len(plaintext))
	for i, m := range plaintext {
		r, err := sparse.Sample(rng)
		if err != nil {
			return nil, errors.Wrapf(err, "arlc: encrypt failed to sample r for symbol %d", i)
		}
		rVec := ring.NewVector(r)

		u, err := aT.MulVec(rVec)
		if err != nil {
			return nil, errors.Wrap(err, "arlc: encrypt failed to compute A^T*r")
		}
		u = u.Mod(p.Q)

		rDotB, err := rVec.Dot(pk.B)
		if err != nil {
			return nil, errors.Wrap(err, "arlc: encrypt failed to compute <r, b>")
		}

		scaled, err := p.encode(m)
		if err != nil {
			return nil, errors.Wrapf(err, "arlc: encrypt: symbol %d at position %d", m, i)
		}

		v := ring.Reduce(rDotB+scaled, p.Q)
		zeroizeScratch(r)

		ct[i] = SymbolCiphertext{U: u, V: v}
	}

	return ct, nil
}
