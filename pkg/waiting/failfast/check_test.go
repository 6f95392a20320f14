/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package failfast

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExplainsTheEvaluatedSnapshot(t *testing.T) {
	fetched := 0
	check := Check[int]{
		Fetch: func(ctx context.Context) (int, error) {
			fetched++
			return fetched, nil
		},
		Evaluate: func(snapshot int) (bool, error) {
			return snapshot >= 2, nil
		},
		Explain: func(snapshot int) string {
			return fmt.Sprintf("snapshot %d", snapshot)
		},
	}

	abort, reason, err := check.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, abort)
	assert.Empty(t, reason)

	// the reason must describe the snapshot that evaluated true, not a
	// fresh fetch
	abort, reason, err = check.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, abort)
	assert.Equal(t, "snapshot 2", reason)
	assert.Equal(t, 2, fetched)
}

func TestCheckFetchErrorPropagates(t *testing.T) {
	check := Check[int]{
		Fetch: func(ctx context.Context) (int, error) {
			return 0, fmt.Errorf("connection refused")
		},
		Evaluate: func(int) (bool, error) { return true, nil },
		Explain:  func(int) string { return "unreachable" },
	}

	abort, reason, err := check.Run(context.Background())
	assert.EqualError(t, err, "connection refused")
	assert.False(t, abort)
	assert.Empty(t, reason)
}

func TestCheckEvaluateErrorPropagates(t *testing.T) {
	check := Check[int]{
		Fetch: func(ctx context.Context) (int, error) { return 1, nil },
		Evaluate: func(int) (bool, error) {
			return false, fmt.Errorf("broken criterion")
		},
		Explain: func(int) string { return "unreachable" },
	}

	abort, _, err := check.Run(context.Background())
	assert.EqualError(t, err, "broken criterion")
	assert.False(t, abort)
}
