/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package event

import (
	"time"

	corev1 "k8s.io/api/core/v1"
)

// OccurredAt returns the best available timestamp for a cluster event,
// preferring LastTimestamp over EventTime. The zero time means the event
// carries no timestamp at all.
func OccurredAt(ev *corev1.Event) time.Time {
	if !ev.LastTimestamp.IsZero() {
		return ev.LastTimestamp.Time
	}
	return ev.EventTime.Time
}
