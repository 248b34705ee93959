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

// encode maps a symbol m in [0, p) to a scaled ring element:
// encode(m) = ((m + p/2) * delta) mod q.
func (p *Params) encode(m int64) (int64, error) {
	if m < 0 || m >= p.P {
		return 0, errors.Wrapf(internal.ErrSymbolOutOfRange, "symbol %d outside [0, %d)", m, p.P)
	}
	scaled := (m + p.P/2) * p.Delta
	return ring.Reduce(scaled, p.Q), nil
}

// decode recovers a symbol from a noisy scaled ring element vPrime in
// [0, q): decode(V') = (round(V'/delta) - p/2) mod p. Rounding is to
// the nearest integer, ties away from zero; this is correct whenever
// the residual noise is below delta/2. No "alternative value" fallback
// is applied: that heuristic is unreachable under a sound noise budget
// and masks a misconfigured parameter set when it is not.
func (p *Params) decode(vPrime int64) int64 {
	rounded := roundDiv(vPrime, p.Delta)
	m := rounded - p.P/2
	return ((m % p.P) + p.P) % p.P
}

// roundDiv returns round(a/b) with ties rounded away from zero, for
// non-negative a and positive b.
func roundDiv(a, b int64) int64 {
	return (2*a + b) / (2 * b)
}
