/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package failfast

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// EventLister lists the current events of one cluster connection.
// *k8sclient.ClientFactory implements it.
type EventLister interface {
	Name() string
	ListEvents(ctx context.Context, namespace string) ([]corev1.Event, error)
}

// Builder collects the fail-fast checks a wait loop consumes, together with
// the ordered cluster connections the checks fetch from. It is used by a
// single caller during configuration; the checks it hands out are safe for
// repeated unsynchronized polling.
type Builder struct {
	clusters  []EventLister
	namespace string
	checks    []FailFastCheck
}

// NewBuilder creates a Builder over the given cluster connections. Checks
// fetch from every connection in the given order.
func NewBuilder(clusters ...EventLister) *Builder {
	return &Builder{
		clusters:  clusters,
		namespace: metav1.NamespaceAll,
	}
}

// InNamespace restricts event fetches to one namespace. The default is all
// namespaces.
func (b *Builder) InNamespace(namespace string) *Builder {
	b.namespace = namespace
	return b
}

// Events opens a builder for an event-based fail-fast check.
func (b *Builder) Events() *EventCheckBuilder {
	return &EventCheckBuilder{builder: b}
}

// AddCheck registers a finished check.
func (b *Builder) AddCheck(check FailFastCheck) *Builder {
	b.checks = append(b.checks, check)
	return b
}

// Checks returns the registered checks in registration order.
func (b *Builder) Checks() []FailFastCheck {
	result := make([]FailFastCheck, len(b.checks))
	copy(result, b.checks)
	return result
}

// Clusters returns the configured cluster connections in registration order.
func (b *Builder) Clusters() []EventLister {
	result := make([]EventLister, len(b.clusters))
	copy(result, b.clusters)
	return result
}

// listAllEvents concatenates the current events of every cluster: connection
// registration order first, each connection's native return order within.
// Duplicates are kept and nothing is cached. A failing connection fails the
// whole fetch; the caller owns retry policy.
func listAllEvents(ctx context.Context, clusters []EventLister, namespace string) ([]corev1.Event, error) {
	var events []corev1.Event
	for _, cluster := range clusters {
		items, err := cluster.ListEvents(ctx, namespace)
		if err != nil {
			return nil, err
		}
		events = append(events, items...)
	}
	return events, nil
}
