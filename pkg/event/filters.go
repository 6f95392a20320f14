/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package event

import (
	"regexp"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// Predicate reports whether a cluster event matches a filter criterion.
// A non-nil error means the criterion itself is broken (for example a
// malformed regular expression) and the caller should treat the whole
// check as fatal.
type Predicate func(ev *corev1.Event) (bool, error)

// OfTypes filters events whose type equals one of the given values
// (case insensitive). For example: Warning, Normal, ...
func OfTypes(types ...string) Predicate {
	return func(ev *corev1.Event) (bool, error) {
		return equalsAnyFold(ev.Type, types), nil
	}
}

// OfObjKinds filters events whose involved object kind equals one of the
// given values (case insensitive). For example: persistentvolume, pod, ...
func OfObjKinds(kinds ...string) Predicate {
	return func(ev *corev1.Event) (bool, error) {
		return equalsAnyFold(ev.InvolvedObject.Kind, kinds), nil
	}
}

// OfReasons filters events whose reason equals one of the given values
// (case insensitive).
func OfReasons(reasons ...string) Predicate {
	return func(ev *corev1.Event) (bool, error) {
		return equalsAnyFold(ev.Reason, reasons), nil
	}
}

// OfObjNames filters events whose involved object name fully matches one of
// the given regular expressions.
func OfObjNames(nameRegexes ...string) Predicate {
	return func(ev *corev1.Event) (bool, error) {
		return matchesAnyWhole(ev.InvolvedObject.Name, nameRegexes)
	}
}

// OfMessages filters events whose message fully matches one of the given
// regular expressions.
func OfMessages(messageRegexes ...string) Predicate {
	return func(ev *corev1.Event) (bool, error) {
		return matchesAnyWhole(ev.Message, messageRegexes)
	}
}

// After filters events last seen strictly after the given time. Events
// without a timestamp never match.
func After(t time.Time) Predicate {
	return func(ev *corev1.Event) (bool, error) {
		at := OccurredAt(ev)
		return !at.IsZero() && at.After(t), nil
	}
}

// InAnyTimeWindow filters events last seen in at least one of the time
// windows formed by consecutive pairs of the given bounds:
// [from1, until1, from2, until2, ...]. An event must be seen strictly after
// a window's lower bound and before or at its upper bound. A trailing
// unpaired bound is ignored. Events without a timestamp never match.
//
// Bounds are compared as absolute instants so that events reported by
// clusters in different time zones order correctly.
func InAnyTimeWindow(bounds ...time.Time) Predicate {
	return func(ev *corev1.Event) (bool, error) {
		at := OccurredAt(ev)
		if at.IsZero() {
			return false, nil
		}
		for i := 0; i+1 < len(bounds); i += 2 {
			if at.After(bounds[i]) && !at.After(bounds[i+1]) {
				return true, nil
			}
		}
		return false, nil
	}
}

func equalsAnyFold(field string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(field, candidate) {
			return true
		}
	}
	return false
}

// matchesAnyWhole requires the whole field to match, a bare substring does
// not. Patterns are compiled on every application so that a malformed
// pattern surfaces where the filter is used, not where it is declared.
func matchesAnyWhole(field string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			return false, err
		}
		if re.MatchString(field) {
			return true, nil
		}
	}
	return false, nil
}
