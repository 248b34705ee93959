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

// Package lwe implements the ARLC symbol-wise LWE public-key
// encryption core: parameter construction, key generation, encryption,
// and decryption.
//
// The reference scheme is public key: no master secret is required to
// encrypt. Security and correctness reduce to the hardness of
// decisional LWE over a prime-power modulus with bounded uniform
// error (see the package-level spec this module implements).
//
// ARLC is an unauthenticated primitive. It offers no replay
// protection, no key confirmation, and Decrypt never signals "wrong
// key" -- an incorrect secret key silently yields garbage symbols.
// Production use requires wrapping this core in a KEM+AEAD
// construction; that wrapping is out of scope for this package.
package lwe
