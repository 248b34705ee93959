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

// Package sample implements the randomness samplers the ARLC core
// needs: a uniform ring-element sampler, a bounded uniform error
// sampler, and the fixed-weight sparse sampler used as the encryption
// ephemeral.
//
// None of the samplers here hold or consume a randomness source of
// their own. Every Sample call takes an io.Reader explicitly, so that
// callers can thread a single randomness source through an entire
// operation (or substitute a seeded, deterministic one in tests).
package sample
