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
	"fmt"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/mapper/internal/segmenttrie"
	"dirpx.dev/dresult/scope"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// Scope prefixes are normalized with scope.Normalize and validated; an
// invalid prefix makes New fail. The returned Mapper shares no state with the
// caller or with other Mappers.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries(b.httpPrefixes, func(v int) int { return v }, "HTTP")
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) }, "gRPC")
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  toGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: toGRPC(b.grpcOverride),
		httpTrie:     freeze(httpTrie),
		grpcTrie:     freeze(grpcTrie),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// buildTries compiles the per-code prefix rules into segment tries.
func buildTries[V any](rules map[code.Code][]prefixRule, conv func(int) V, transport string) (map[code.Code]*segmenttrie.Trie[V], error) {
	out := make(map[code.Code]*segmenttrie.Trie[V], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s scope-prefix %q for code %q: %w", transport, r.prefix, c, err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for code %q: %w", transport, p, c, err)
			}
		}
		out[c] = t
	}
	return out, nil
}

// mapper is the immutable apis.Mapper implementation. Lookups are
// O(scope depth) and safe for concurrent use.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	// per-code tries keyed by scope prefix
	httpTrie map[code.Code]*segmenttrie.Trie[int]
	grpcTrie map[code.Code]*segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Tier names reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// HTTPStatus resolves an HTTP status for c and s.
func (m *mapper) HTTPStatus(c code.Code, s scope.Scope) int {
	v, _, _ := resolve(c.OrInternal(), s, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status for c and s.
func (m *mapper) GRPCStatus(c code.Code, s scope.Scope) codes.Code {
	v, _, _ := resolve(c.OrInternal(), s, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Status resolves both transports with the same inputs.
func (m *mapper) Status(c code.Code, s scope.Scope) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, s),
		GRPC: m.GRPCStatus(c, s),
	}
}

// resolve walks the tiers: override, scope LPM, default, fallback. It returns
// the value, the tier, and the matched pattern for prefix hits.
func resolve[V any](
	c code.Code,
	s scope.Scope,
	override map[code.Code]V,
	tries map[code.Code]*segmenttrie.Trie[V],
	defaults map[code.Code]V,
	fallback V,
) (V, string, string) {
	if v, ok := override[c]; ok {
		return v, sourceOverride, ""
	}
	if t := tries[c]; t != nil {
		if v, ok, pat := t.MatchWithPattern(string(s)); ok {
			return v, sourcePrefix, pat
		}
	}
	if v, ok := defaults[c]; ok {
		return v, sourceDefault, ""
	}
	return fallback, sourceFallback, ""
}

// Explain returns a trace of how c and s were resolved:
//
//	code="unavailable" scope="storage.pg.connect"
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
func (m *mapper) Explain(c code.Code, s scope.Scope) string {
	c = c.OrInternal()
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q scope=%q\n", c, s)

	hv, hsrc, hpat := resolve(c, s, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", hsrc, patternSuffix(hpat), hv)

	gv, gsrc, gpat := resolve(c, s, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", gsrc, patternSuffix(gpat), strings.ToUpper(gv.String()), int(gv))

	return b.String()
}

func patternSuffix(pat string) string {
	if pat == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", pat)
}

// normalizeAndValidatePrefix canonicalizes a scope prefix. "*" segments are
// allowed, but not a prefix made of "*" only.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := scope.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if !segmenttrie.ValidSegment(seg, true) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}
