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

// EncryptString is a convenience wrapper over Encrypt for the default
// text binding: one symbol per input byte, each required to be in
// [0, p). Callers whose text is not already ASCII must pre-encode it
// (e.g. to UTF-8 bytes) before calling this.
func EncryptString(p *Params, pk *PublicKey, plaintext string, rng randReader) (Ciphertext, error) {
	symbols := make([]int64, len(plaintext))
	for i, b := range []byte(plaintext) {
		symbols[i] = int64(b)
	}
	return Encrypt(p, pk, symbols, rng)
}

// DecryptString is the inverse convenience wrapper of EncryptString. It
// returns the raw recovered bytes as a string, with no filtering of
// non-printable output: that filtering is a caller/presentation
// concern, not a core one.
func DecryptString(p *Params, sk *SecretKey, ct Ciphertext) (string, error) {
	symbols, err := Decrypt(p, sk, ct)
	if err != nil {
		return "", err
	}

	out := make([]byte, len(symbols))
	for i, m := range symbols {
		out[i] = byte(m)
	}
	return string(out), nil
}
