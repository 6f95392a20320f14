/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package failfast

import (
	"context"
	"fmt"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"

	"github.com/AMD-AIG-AIMA/SAFE/testkit/pkg/event"
)

// EventCheckBuilder accumulates filter criteria for an event-based fail-fast
// check. Every setter overwrites its previous value; values inside one
// setter combine with OR, configured setters combine with AND. An unset
// setter imposes no constraint. Calling a setter with an empty value list is
// a configured criterion that matches no event.
type EventCheckBuilder struct {
	builder  *Builder
	criteria eventCriteria
}

type eventCriteria struct {
	names    []string
	reasons  []string
	messages []string
	types    []string
	kinds    []string
	after    *time.Time
}

// WithNames sets regexes matched against the whole involved object name.
func (c *EventCheckBuilder) WithNames(nameRegexes ...string) *EventCheckBuilder {
	c.criteria.names = append([]string{}, nameRegexes...)
	return c
}

// WithReasons sets the accepted event reasons (case insensitive).
func (c *EventCheckBuilder) WithReasons(reasons ...string) *EventCheckBuilder {
	c.criteria.reasons = append([]string{}, reasons...)
	return c
}

// WithMessages sets regexes matched against the whole event message.
func (c *EventCheckBuilder) WithMessages(messageRegexes ...string) *EventCheckBuilder {
	c.criteria.messages = append([]string{}, messageRegexes...)
	return c
}

// WithTypes sets the accepted event types (case insensitive).
// For example: Warning, Normal, ...
func (c *EventCheckBuilder) WithTypes(types ...string) *EventCheckBuilder {
	c.criteria.types = append([]string{}, types...)
	return c
}

// WithKinds sets the accepted involved object kinds (case insensitive).
// For example: persistentvolume, pod, ...
func (c *EventCheckBuilder) WithKinds(kinds ...string) *EventCheckBuilder {
	c.criteria.kinds = append([]string{}, kinds...)
	return c
}

// After only considers events last seen strictly after the given time.
func (c *EventCheckBuilder) After(after time.Time) *EventCheckBuilder {
	c.criteria.after = &after
	return c
}

// AtLeastOneExists finalizes the check: the wait aborts as soon as at least
// one event passes every configured criterion. The criteria are frozen here;
// later builder calls do not affect the produced check. The check is
// registered with the owning Builder, which is returned for chaining.
func (c *EventCheckBuilder) AtLeastOneExists() *Builder {
	criteria := c.criteria.clone()
	clusters := c.builder.Clusters()
	namespace := c.builder.namespace
	return c.builder.AddCheck(Check[[]corev1.Event]{
		Fetch: func(ctx context.Context) ([]corev1.Event, error) {
			return listAllEvents(ctx, clusters, namespace)
		},
		Evaluate: criteria.anyMatch,
		Explain: func(events []corev1.Event) string {
			return criteria.report(events, "at least one exists")
		},
	})
}

func (cr eventCriteria) clone() eventCriteria {
	result := eventCriteria{
		names:    cloneStrings(cr.names),
		reasons:  cloneStrings(cr.reasons),
		messages: cloneStrings(cr.messages),
		types:    cloneStrings(cr.types),
		kinds:    cloneStrings(cr.kinds),
	}
	if cr.after != nil {
		after := *cr.after
		result.after = &after
	}
	return result
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}

// predicates returns one predicate per configured criterion. Unset criteria
// contribute nothing.
func (cr eventCriteria) predicates() []event.Predicate {
	var preds []event.Predicate
	if cr.names != nil {
		preds = append(preds, event.OfObjNames(cr.names...))
	}
	if cr.after != nil {
		preds = append(preds, event.After(*cr.after))
	}
	if cr.reasons != nil {
		preds = append(preds, event.OfReasons(cr.reasons...))
	}
	if cr.messages != nil {
		preds = append(preds, event.OfMessages(cr.messages...))
	}
	if cr.types != nil {
		preds = append(preds, event.OfTypes(cr.types...))
	}
	if cr.kinds != nil {
		preds = append(preds, event.OfObjKinds(cr.kinds...))
	}
	return preds
}

func (cr eventCriteria) anyMatch(events []corev1.Event) (bool, error) {
	preds := cr.predicates()
	for i := range events {
		matched, err := matchesAll(&events[i], preds)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func (cr eventCriteria) filter(events []corev1.Event) ([]corev1.Event, error) {
	preds := cr.predicates()
	var matched []corev1.Event
	for i := range events {
		ok, err := matchesAll(&events[i], preds)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, events[i])
		}
	}
	return matched, nil
}

func matchesAll(ev *corev1.Event, preds []event.Predicate) (bool, error) {
	for _, pred := range preds {
		matched, err := pred(ev)
		if err != nil || !matched {
			return false, err
		}
	}
	return true, nil
}

// report renders the abort reason: every matching event of the snapshot in
// fetch order, followed by a restatement of the configured criteria.
func (cr eventCriteria) report(events []corev1.Event, condition string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Following events match condition: <%s>\n", condition)
	matched, err := cr.filter(events)
	if err != nil {
		fmt.Fprintf(&sb, "\tfilter failed: %v\n", err)
	}
	for i := range matched {
		ev := &matched[i]
		fmt.Fprintf(&sb, "\t%s\t%s/%s\t%s\n",
			formatOccurredAt(ev), ev.InvolvedObject.Kind, ev.InvolvedObject.Name, ev.Message)
	}
	sb.WriteString("Filter:")
	if cr.kinds != nil {
		fmt.Fprintf(&sb, "\t obj kinds: %v\n", cr.kinds)
	}
	if cr.names != nil {
		fmt.Fprintf(&sb, "\t obj names: %v\n", cr.names)
	}
	if cr.reasons != nil {
		fmt.Fprintf(&sb, "\t event reasons: %v\n", cr.reasons)
	}
	if cr.messages != nil {
		fmt.Fprintf(&sb, "\t messages: %v\n", cr.messages)
	}
	if cr.types != nil {
		fmt.Fprintf(&sb, "\t event types: %v\n", cr.types)
	}
	if cr.after != nil {
		fmt.Fprintf(&sb, "\t after: %s\n", cr.after.Format(time.RFC3339))
	}
	return sb.String()
}

func formatOccurredAt(ev *corev1.Event) string {
	at := event.OccurredAt(ev)
	if at.IsZero() {
		return "<no timestamp>"
	}
	return at.Format(time.RFC3339)
}
