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

// Zeroize overwrites the secret key material in place. Call it on all
// exit paths once a SecretKey is no longer needed. After Zeroize, sk
// must not be used.
func (sk *SecretKey) Zeroize() {
	for i := range sk.S {
		sk.S[i] = 0
	}
}

// zeroizeScratch overwrites an intermediate secret-derived buffer
// (e.g. a sampled r or the keygen error term e) in place, for
// callers that keep such buffers around longer than one statement.
func zeroizeScratch(v []int64) {
	for i := range v {
		v[i] = 0
	}
}
