/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package k8sclient

import (
	"context"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/klog/v2"

	"github.com/AMD-AIG-AIMA/SAFE/testkit/pkg/backoff"
	"github.com/AMD-AIG-AIMA/SAFE/testkit/pkg/config"
)

// ClientFactory is one cluster connection of the test harness. The name
// typically refers to the cluster under test.
type ClientFactory struct {
	name       string
	clientSet  kubernetes.Interface
	restConfig *rest.Config
}

// NewClientFactory creates a cluster connection from an explicit endpoint and
// base64 encoded TLS material.
func NewClientFactory(name, endpoint, certData,
	keyData, caData string) (*ClientFactory, error) {
	clientSet, restCfg, err := NewClientSet(endpoint, certData, keyData, caData, true)
	if err != nil {
		return nil, errors.Wrapf(err, "create client for cluster %s", name)
	}
	return newClientFactory(name, clientSet, restCfg)
}

// NewClientFactoryFromKubeconfig creates a cluster connection from a
// kubeconfig file.
func NewClientFactoryFromKubeconfig(name, path string) (*ClientFactory, error) {
	clientSet, restCfg, err := NewClientSetFromKubeconfig(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create client for cluster %s from %s", name, path)
	}
	return newClientFactory(name, clientSet, restCfg)
}

// NewClientFactoryWithOnlyClient creates a factory around an existing
// clientset, without connection probing. Tests inject fake clientsets here.
func NewClientFactoryWithOnlyClient(name string, clientSet kubernetes.Interface) *ClientFactory {
	return &ClientFactory{
		name:      name,
		clientSet: clientSet,
	}
}

// FactoriesFromConfig creates one cluster connection per configured
// kubeconfig, in configuration order.
func FactoriesFromConfig() ([]*ClientFactory, error) {
	var factories []*ClientFactory
	for _, path := range config.GetClusterKubeconfigs() {
		factory, err := NewClientFactoryFromKubeconfig(filepath.Base(path), path)
		if err != nil {
			return nil, err
		}
		factories = append(factories, factory)
	}
	return factories, nil
}

func newClientFactory(name string,
	clientSet kubernetes.Interface, restCfg *rest.Config) (*ClientFactory, error) {
	factory := &ClientFactory{
		name:       name,
		clientSet:  clientSet,
		restConfig: restCfg,
	}
	if config.IsProbeEnabled() {
		if err := factory.probe(config.GetProbeTimeout()); err != nil {
			return nil, errors.Wrapf(err, "cluster %s is not reachable", name)
		}
	}
	klog.Infof("new k8s client factory. name: %s", name)
	return factory, nil
}

// Name get factory name.
func (f *ClientFactory) Name() string {
	return f.name
}

// ClientSet returns the underlying clientset.
func (f *ClientFactory) ClientSet() kubernetes.Interface {
	return f.clientSet
}

// ListEvents lists the cluster's current events in the given namespace,
// all namespaces when empty. Every call is a fresh retrieval; list errors
// are returned unchanged for the caller to handle.
func (f *ClientFactory) ListEvents(ctx context.Context, namespace string) ([]corev1.Event, error) {
	list, err := f.clientSet.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// probe verifies the API server answers before the factory is handed out.
// Only construction retries; nothing else in this package does.
func (f *ClientFactory) probe(maxElapsedTime time.Duration) error {
	return backoff.Retry(func() error {
		_, err := f.clientSet.Discovery().ServerVersion()
		return err
	}, maxElapsedTime, 5*time.Second)
}
