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

	"github.com/pkg/errors"

	"github.com/arlc-project/arlc/internal"
	"github.com/arlc-project/arlc/ring"
)

// elementWidth returns the number of bytes used to serialize one ring
// element under parameters p: ceil(log2(q)) bits, byte-aligned. For
// q = 32768 = 2^15 that is 2 bytes; for the DefaultParams modulus
// q = 262144 = 2^18 it is 3 bytes.
func (p *Params) elementWidth() int {
	bits := 0
	for v := p.Q - 1; v > 0; v >>= 1 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return (bits + 7) / 8
}

// symbolSize returns the wire size in bytes of one symbol ciphertext:
// n ring elements of U followed by the scalar V. For DefaultParams
// (n=256, 3 bytes/element) this is 3*256 + 3 = 771 bytes; with
// q = 32768 (2 bytes/element) it would be 2*256 + 2 = 514 bytes.
func (p *Params) symbolSize() int {
	return (p.N + 1) * p.elementWidth()
}

// MarshalCiphertext serializes ct: for each symbol, the n elements of
// U followed by V, each a little-endian unsigned integer of
// p.elementWidth() bytes.
func (p *Params) MarshalCiphertext(ct Ciphertext) ([]byte, error) {
	width := p.elementWidth()
	out := make([]byte, 0, len(ct)*p.symbolSize())

	for i, sym := range ct {
		if len(sym.U) != p.N {
			return nil, errors.Wrapf(internal.ErrMalformedCiphertext, "arlc: marshal: symbol %d has %d U-elements, want %d", i, len(sym.U), p.N)
		}
		for _, u := range sym.U {
			out = appendElement(out, u, width)
		}
		out = appendElement(out, sym.V, width)
	}

	return out, nil
}

// UnmarshalCiphertext parses a wire-format ciphertext produced by
// MarshalCiphertext. Empty data parses to an empty ciphertext. It
// returns internal.ErrMalformedCiphertext if the byte length is not a
// multiple of the per-symbol size, or if any parsed element lies
// outside [0, q).
func (p *Params) UnmarshalCiphertext(data []byte) (Ciphertext, error) {
	size := p.symbolSize()
	if len(data) == 0 {
		return Ciphertext{}, nil
	}
	if size == 0 || len(data)%size != 0 {
		return nil, errors.Wrapf(internal.ErrMalformedCiphertext, "arlc: unmarshal: ciphertext length %d is not a multiple of the per-symbol size %d", len(data), size)
	}

	width := p.elementWidth()
	count := len(data) / size
	ct := make(Ciphertext, count)

	for i := 0; i < count; i++ {
		symBytes := data[i*size : (i+1)*size]
		u := make(ring.Vector, p.N)
		for j := 0; j < p.N; j++ {
			v, err := readElement(symBytes[j*width:(j+1)*width], width, p.Q)
			if err != nil {
				return nil, errors.Wrapf(err, "arlc: unmarshal: symbol %d, U[%d]", i, j)
			}
			u[j] = v
		}
		v, err := readElement(symBytes[p.N*width:(p.N+1)*width], width, p.Q)
		if err != nil {
			return nil, errors.Wrapf(err, "arlc: unmarshal: symbol %d, V", i)
		}
		ct[i] = SymbolCiphertext{U: u, V: v}
	}

	return ct, nil
}

// MarshalPublicKey serializes (A, b) in the same element encoding as
// MarshalCiphertext. A may be omitted from the wire form when it is a
// fixed public parameter of the parameter set; MarshalPublicKey always
// includes it, and MarshalPublicKeyCompact omits it in favor of the
// seed it was expanded from.
func (pk *PublicKey) MarshalPublicKey() []byte {
	p := pk.Params
	width := p.elementWidth()
	out := make([]byte, 0, (p.M*p.N+p.M)*width)

	for _, row := range p.A {
		for _, a := range row {
			out = appendElement(out, a, width)
		}
	}
	for _, b := range pk.B {
		out = appendElement(out, b, width)
	}

	return out
}

// MarshalPublicKeyCompact serializes only (seed, b): the seed A was
// expanded from, followed by b in the element encoding. This is the
// space-efficient wire form for a public key: the recipient re-derives
// A from the seed instead of receiving it in full.
func (pk *PublicKey) MarshalPublicKeyCompact() []byte {
	p := pk.Params
	width := p.elementWidth()
	out := make([]byte, 0, len(p.Seed)+p.M*width)
	out = append(out, p.Seed...)
	for _, b := range pk.B {
		out = appendElement(out, b, width)
	}
	return out
}

// appendElement appends x to out as a little-endian unsigned integer
// of the given byte width.
func appendElement(out []byte, x int64, width int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(x))
	return append(out, buf[:width]...)
}

// readElement parses a little-endian unsigned integer of the given
// byte width and checks it lies in [0, q).
func readElement(b []byte, width int, q int64) (int64, error) {
	buf := make([]byte, 8)
	copy(buf, b[:width])
	v := int64(binary.LittleEndian.Uint64(buf))
	if v < 0 || v >= q {
		return 0, errors.Wrapf(internal.ErrMalformedCiphertext, "element %d outside [0, %d)", v, q)
	}
	return v, nil
}
