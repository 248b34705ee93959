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

package ring

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/arlc-project/arlc/sample"
)

// Matrix wraps a slice of Vector elements in row-major order. The j-th
// element of the i-th row is m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of rows and returns a new Matrix instance.
// It returns an error unless all rows have the same length.
func NewMatrix(rows []Vector) (Matrix, error) {
	l := -1
	if len(rows) > 0 {
		l = len(rows[0])
	}
	for _, r := range rows {
		if len(r) != l {
			return nil, fmt.Errorf("ring: all rows should be of the same length")
		}
	}

	return Matrix(rows), nil
}

// NewRandomMatrix returns a new rows*cols Matrix with elements drawn
// independently from sampler, reading randomness from rng.
func NewRandomMatrix(rows, cols int, rng io.Reader, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, rng, sampler)
		if err != nil {
			return nil, errors.Wrap(err, "ring: failed to sample random matrix")
		}
		mat[i] = vec
	}

	return NewMatrix(mat)
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of m.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// CheckDims reports whether m has the given dimensions.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// GetCol returns the i-th column of m as a Vector.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("ring: column index %d exceeds matrix dimensions", i)
	}

	col := make(Vector, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		col[j] = m[j][i]
	}

	return col, nil
}

// Transpose returns the transpose of m as a new Matrix.
func (m Matrix) Transpose() (Matrix, error) {
	cols := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		col, err := m.GetCol(i)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	return NewMatrix(cols)
}

// Mod reduces every element of m into [0, q).
func (m Matrix) Mod(q int64) Matrix {
	rows := make([]Vector, m.Rows())
	for i, r := range m {
		rows[i] = r.Mod(q)
	}
	return Matrix(rows)
}

// Add adds matrices m and other element-wise.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.CheckDims(other.Rows(), other.Cols()) {
		return nil, fmt.Errorf("ring: matrices mismatch in dimensions")
	}

	rows := make([]Vector, m.Rows())
	for i, r := range m {
		rows[i] = r.Add(other[i])
	}

	return NewMatrix(rows)
}

// MulVec multiplies matrix m by vector v and returns the resulting
// vector. It returns an error if m's column count does not match v's
// length.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("ring: cannot multiply a %dx%d matrix by a length-%d vector", m.Rows(), m.Cols(), len(v))
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		prod, err := row.Dot(v)
		if err != nil {
			return nil, err
		}
		res[i] = prod
	}

	return res, nil
}
