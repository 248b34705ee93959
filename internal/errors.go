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

package internal

import "errors"

// Sentinel error kinds for the ARLC core, per the error-handling design
// (parameter construction, keypair generation, encryption and decryption
// each surface exactly one of these, wrapped with call-site context).
var (
	ErrInvalidParameters   = errors.New("arlc: parameter set is not of the proper form")
	ErrSymbolOutOfRange    = errors.New("arlc: symbol is outside the alphabet [0, p)")
	ErrRandomnessFailure   = errors.New("arlc: randomness source could not supply the requested bytes")
	ErrMalformedCiphertext = errors.New("arlc: ciphertext is not of the proper form")
)
