/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package config

const (
	// file names resolved against the project root
	globalConfigFile = "global-test.yaml"
	userConfigFile   = "test.yaml"

	// cluster
	clusterPrefix      = "cluster."
	clusterKubeconfigs = clusterPrefix + "kubeconfigs"
	clusterNamespace   = clusterPrefix + "namespace"

	// probe
	probePrefix        = "probe."
	probeEnable        = probePrefix + "enable"
	probeTimeoutSecond = probePrefix + "timeout_second"
)
