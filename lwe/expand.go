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
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/arlc-project/arlc/ring"
)

// ExpandMatrix deterministically expands the public m*n matrix A from
// a short seed using a SHAKE128 extendable-output function, so that a
// public key reduces to (seed, b) on the wire instead of carrying A in
// full.
//
// Every element is drawn by rejection sampling against the XOF stream:
// two bytes are read per candidate (four when q exceeds 2^16), the
// candidate is accepted if it lies below rejectionCeiling(q), and the
// accepted value is reduced mod q; this keeps the distribution exactly
// uniform over [0, q) regardless of whether q is a power of two.
func ExpandMatrix(seed []byte, rows, cols int, q int64) (ring.Matrix, error) {
	xof := sha3.NewShake128()
	if _, err := xof.Write(seed); err != nil {
		return nil, err
	}
	if _, err := xof.Write([]byte("arlc-matrix-A")); err != nil {
		return nil, err
	}

	mat := make([]ring.Vector, rows)
	width := 2
	if q > 1<<16 {
		width = 4
	}
	buf := make([]byte, 8)

	for i := 0; i < rows; i++ {
		row := make(ring.Vector, cols)
		for j := 0; j < cols; j++ {
			for {
				if _, err := xof.Read(buf[:width]); err != nil {
					return nil, err
				}
				v := int64(binary.LittleEndian.Uint64(buf))
				if v < rejectionCeiling(q) {
					row[j] = v % q
					break
				}
			}
		}
		mat[i] = row
	}

	return ring.NewMatrix(mat)
}

// rejectionCeiling returns the largest multiple of q that fits in the
// candidate width (16 bits, or 32 bits when q exceeds 2^16), so that
// v % q is uniform over [0, q) once v is known to be below it.
func rejectionCeiling(q int64) int64 {
	span := int64(1) << 16
	if q > span {
		span = int64(1) << 32
	}
	return span - (span % q)
}
