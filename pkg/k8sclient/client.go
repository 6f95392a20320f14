/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package k8sclient

import (
	"encoding/base64"
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client/config"
)

const (
	defaultQPS   = 50
	defaultBurst = 100
)

// NewClientSetInCluster creates a ClientSet from the ambient environment
// (in-cluster service account or the default kubeconfig chain).
func NewClientSetInCluster() (kubernetes.Interface, *rest.Config, error) {
	restConfig, err := GetRestConfigInCluster()
	if err != nil {
		return nil, nil, err
	}
	cli, err := NewClientSetWithRestConfig(restConfig)
	return cli, restConfig, err
}

// NewClientSet creates a ClientSet from an explicit endpoint and base64
// encoded TLS material.
func NewClientSet(endpoint, certData, keyData, caData string,
	insecure bool) (kubernetes.Interface, *rest.Config, error) {
	restConfig, err := createRestConfig(endpoint, certData, keyData, caData, insecure)
	if err != nil {
		return nil, nil, err
	}
	cli, err := NewClientSetWithRestConfig(restConfig)
	return cli, restConfig, err
}

// NewClientSetFromKubeconfig creates a ClientSet from a kubeconfig file.
func NewClientSetFromKubeconfig(path string) (kubernetes.Interface, *rest.Config, error) {
	restConfig, err := clientcmd.BuildConfigFromFlags("", path)
	if err != nil {
		return nil, nil, err
	}
	restConfig.QPS = defaultQPS
	restConfig.Burst = defaultBurst
	cli, err := NewClientSetWithRestConfig(restConfig)
	return cli, restConfig, err
}

// NewClientSetWithRestConfig creates a ClientSet for the given REST configuration.
func NewClientSetWithRestConfig(cfg *rest.Config) (kubernetes.Interface, error) {
	return kubernetes.NewForConfig(cfg)
}

// GetRestConfigInCluster retrieves the REST configuration for in-cluster access.
func GetRestConfigInCluster() (*rest.Config, error) {
	restCfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	restCfg.QPS = defaultQPS
	restCfg.Burst = defaultBurst
	return restCfg, nil
}

// createRestConfig creates a REST configuration with provided TLS parameters.
func createRestConfig(endpoint, certData, keyData, caData string, insecure bool) (*rest.Config, error) {
	cert := base64Decode(certData)
	key := base64Decode(keyData)
	if endpoint == "" || cert == "" || key == "" {
		return nil, fmt.Errorf("invalid input")
	}
	cfg := &rest.Config{
		Host: endpoint,
		TLSClientConfig: rest.TLSClientConfig{
			Insecure: insecure,
			KeyData:  []byte(key),
			CertData: []byte(cert),
		},
		QPS:   defaultQPS,
		Burst: defaultBurst,
	}
	if !insecure {
		ca := base64Decode(caData)
		if ca == "" {
			return nil, fmt.Errorf("invalid input")
		}
		cfg.TLSClientConfig.CAData = []byte(ca)
	}
	return cfg, nil
}

func base64Decode(in string) string {
	if in == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(in)
	if err != nil {
		return ""
	}
	return string(decoded)
}
