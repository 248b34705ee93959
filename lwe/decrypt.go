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
)

// Decrypt runs decryption over a ciphertext, recovering one symbol per
// (U, V) pair: prod = <U, s> mod q, m_scaled' = (V - prod) mod q,
// m = decode(m_scaled').
//
// Decrypt never signals "wrong key": an incorrect secret key yields
// garbage symbols rather than an error, which is an inherent property
// of unauthenticated LWE PKE. Detecting that is the responsibility of
// an outer authenticated layer, not this core.
func Decrypt(p *Params, sk *SecretKey, ct Ciphertext) ([]int64, error) {
	plaintext := make([]int64, len(ct))

	for i, sym := range ct {
		if len(sym.U) != p.N || sym.V < 0 || sym.V >= p.Q {
			return nil, errors.Wrapf(internal.ErrMalformedCiphertext, "arlc: decrypt: symbol %d has the wrong shape or an out-of-range V", i)
		}
		for j, u := range sym.U {
			if u < 0 || u >= p.Q {
				return nil, errors.Wrapf(internal.ErrMalformedCiphertext, "arlc: decrypt: symbol %d has U[%d]=%d outside [0, %d)", i, j, u, p.Q)
			}
		}

		prod, err := sym.U.Dot(ring.Vector(sk.S))
		if err != nil {
			return nil, errors.Wrapf(err, "arlc: decrypt failed to compute <U, s> for symbol %d", i)
		}
		prod = ring.Reduce(prod, p.Q)

		scaled := ring.Reduce(sym.V-prod, p.Q)
		plaintext[i] = p.decode(scaled)
	}

	return plaintext, nil
}
