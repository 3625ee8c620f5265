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

package dresult

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Gather runs actions concurrently, at most limit at a time (no limit when
// limit <= 0), and merges their Results in the order of actions, not in
// completion order. A nil Result counts as one with no reasons.
//
// ctx is handed to every action; Gather itself never cancels it, so one
// failed action does not stop the others.
func Gather(ctx context.Context, limit int, actions ...func(context.Context) *Result) *Result {
	results := make([]*Result, len(actions))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, action := range actions {
		g.Go(func() error {
			results[i] = action(gctx)
			return nil
		})
	}
	_ = g.Wait()

	out := Ok()
	for _, res := range results {
		if res != nil {
			out.reasons = append(out.reasons, res.reasons...)
		}
	}
	return out
}
