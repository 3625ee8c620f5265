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

// Package segmenttrie implements a longest-prefix-match index over
// dot-separated scope strings.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie maps dot-separated prefixes to values. Each node is one segment; the
// child "*" matches exactly one segment of any name. Matching respects segment
// boundaries and prefers the deepest match.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the inserted prefix, kept for Explain output.
	pattern string
}

// ErrInvalidPrefix is returned by Insert for empty, malformed, or
// wildcard-only prefixes.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, e.g. "storage.pg" or "auth.*.verify".
// Re-inserting a prefix replaces its value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, s := range segs {
		if !ValidSegment(s, true) {
			return ErrInvalidPrefix
		}
		if s != "*" {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix matching key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched prefix as it was
// inserted. At equal depth an exact segment beats "*". Invalid keys match
// nothing beyond the segments that precede the first invalid one.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	m := matcher[T]{key: key, bestDepth: -1}
	m.dfs(t, 0, 0)
	if m.bestDepth < 0 {
		return zero, false, ""
	}
	return m.best.val, true, m.best.pattern
}

type matcher[T any] struct {
	key       string
	best      *Trie[T]
	bestDepth int
}

// dfs consumes the segment starting at off. Segments are sliced out of key in
// place, without allocating.
func (m *matcher[T]) dfs(n *Trie[T], off, depth int) {
	if n.hasVal && depth > m.bestDepth {
		m.best, m.bestDepth = n, depth
	}
	if off >= len(m.key) {
		return
	}
	end := segmentEnd(m.key, off)
	if end < 0 {
		return
	}
	next := end
	if next < len(m.key) {
		next++ // skip '.'
	}
	if child, ok := n.children[m.key[off:end]]; ok {
		m.dfs(child, next, depth+1)
	}
	if child, ok := n.children["*"]; ok {
		m.dfs(child, next, depth+1)
	}
}

// segmentEnd returns the end of the [a-z][a-z0-9_]* segment at off, or -1.
func segmentEnd(s string, off int) int {
	if c := s[off]; c < 'a' || c > 'z' {
		return -1
	}
	i := off + 1
	for ; i < len(s) && s[i] != '.'; i++ {
		if !segmentByte(s[i]) {
			return -1
		}
	}
	return i
}

// ValidSegment reports whether seg is [a-z][a-z0-9_]*, or "*" when
// allowWildcard is set.
func ValidSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	return segmentEnd(seg, 0) == len(seg)
}

func segmentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
