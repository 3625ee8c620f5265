/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mapper resolves the classification of a failing alert, its code
// (dirpx.dev/dresult/code) and optional scope (dirpx.dev/dresult/scope), into
// HTTP and gRPC statuses.
//
// # Resolution model
//
// For a (code, scope) pair a Mapper tries, in order:
//
//  1. an exact override for the code;
//  2. the longest scope-prefix rule registered for the code;
//  3. the per-code default (library or user-adjusted);
//  4. the global fallback (500 / codes.Internal).
//
// Scope rules are segment-aware: scopes are "."-separated and "*" matches
// exactly one segment. "storage.pg" matches "storage.pg.connect" but not
// "storage.pgx".
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled, 499),
//	    mapper.WithHTTPPrefix(code.Unavailable, "storage.*.connect", 504),
//	)
//	st := m.Status(code.Unavailable, "storage.pg.connect")
//	// st.HTTP == 504, st.GRPC == codes.Unavailable
//
// An empty code is resolved as code.Internal.
//
// A Mapper is an immutable snapshot: New copies every input, so one instance
// can be shared across goroutines. Explain reports which tier matched, for
// debugging and tests.
package mapper
