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

package mapper

import (
	"maps"
	"net/http"

	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw scope prefix (may contain "*"); normalized in New.
	prefix string
	val    int
}

// builder collects options before New freezes them. gRPC values are kept as
// int for symmetry with HTTP and converted when freezing.
type builder struct {
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]int

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]int

	httpPrefixes map[code.Code][]prefixRule
	grpcPrefixes map[code.Code][]prefixRule

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder returns a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: maps.Clone(defaultHTTP),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		httpPrefixes: make(map[code.Code][]prefixRule),
		grpcPrefixes: make(map[code.Code][]prefixRule),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	return b
}

// toGRPC copies m converting values to codes.Code; nil when m is empty.
func toGRPC(m map[code.Code]int) map[code.Code]codes.Code {
	if len(m) == 0 {
		return nil
	}
	out := make(map[code.Code]codes.Code, len(m))
	for k, v := range m {
		out[k] = codes.Code(v)
	}
	return out
}

// freeze copies m; nil when m is empty.
func freeze[V any](m map[code.Code]V) map[code.Code]V {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}
