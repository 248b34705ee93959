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

// Error samples the LWE error term uniformly from the closed interval
// [-eta, eta]. Each of the 2*eta+1 integer values is equally likely;
// bias is ruled out because the underlying draw goes through
// crypto/rand.Int's rejection sampling.
type Error struct {
	eta  int64
	span *big.Int // 2*eta + 1
}

// NewError returns an Error sampler bounded by eta.
func NewError(eta int64) *Error {
	return &Error{eta: eta, span: big.NewInt(2*eta + 1)}
}

// Sample draws a single value from [-eta, eta], reading randomness
// from rng.
func (e *Error) Sample(rng io.Reader) (int64, error) {
	n, err := rand.Int(rng, e.span)
	if err != nil {
		return 0, errors.Wrap(err, "error sampler: randomness source failed")
	}
	return n.Int64() - e.eta, nil
}
