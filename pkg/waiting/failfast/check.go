/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package failfast

import (
	"context"
)

// FailFastCheck is the capability a wait loop polls once per tick to decide
// whether the awaited condition can never succeed and the wait should abort
// before its timeout.
type FailFastCheck interface {
	// Run returns whether the wait should abort and, if so, the reason text.
	// A non-nil error is fatal to the wait; this layer never retries.
	Run(ctx context.Context) (abort bool, reason string, err error)
}

// Check is a generic fetch/evaluate/explain triple over one snapshot type.
// Fetch may block on cluster I/O; Evaluate and Explain are pure. A Check
// holds no state of its own and may be polled concurrently with other
// checks.
type Check[S any] struct {
	Fetch    func(ctx context.Context) (S, error)
	Evaluate func(snapshot S) (bool, error)
	Explain  func(snapshot S) string
}

// Run fetches a snapshot, evaluates it, and on a positive evaluation
// explains that same snapshot. The reported state is therefore exactly the
// state that triggered the abort, not a later fetch.
func (c Check[S]) Run(ctx context.Context) (bool, string, error) {
	snapshot, err := c.Fetch(ctx)
	if err != nil {
		return false, "", err
	}
	matched, err := c.Evaluate(snapshot)
	if err != nil || !matched {
		return false, "", err
	}
	return true, c.Explain(snapshot), nil
}
