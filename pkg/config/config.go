/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// Load reads the layered test-harness configuration. Precedence, from lowest
// to highest: global-test.yaml at the project root, test.yaml at the project
// root (user local, unshared), environment variables (underscores read as
// dots), explicit SetValue calls.
func Load() error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	for _, name := range []string{globalConfigFile, userConfigFile} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		viper.SetConfigType("yaml")
		if err := viper.MergeInConfig(); err != nil {
			klog.Warningf("unable to read properties from %s: %v", path, err)
		}
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	return nil
}

// LoadConfig loads configuration from the specified file path only, skipping
// the layered lookup.
func LoadConfig(path string) error {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	return viper.ReadInConfig()
}

// SetValue sets a configuration value for the specified key. Values set this
// way take precedence over every other source.
func SetValue(key, value string) {
	viper.Set(key, value)
}

// projectRoot walks up from the working directory to the outermost directory
// still carrying a go.mod.
func projectRoot() (string, error) {
	dir, err := filepath.Abs("")
	if err != nil {
		return "", err
	}
	root := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			root = dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return root, nil
		}
		dir = parent
	}
}

func getString(key, defaultValue string) string {
	if !viper.IsSet(key) {
		return defaultValue
	}
	return viper.GetString(key)
}

func getBool(key string, defaultValue bool) bool {
	if !viper.IsSet(key) {
		return defaultValue
	}
	return viper.GetBool(key)
}

func getInt(key string, defaultValue int) int {
	if !viper.IsSet(key) {
		return defaultValue
	}
	return viper.GetInt(key)
}

func getStrings(key string) []string {
	val := viper.GetString(key)
	return removeBlank(strings.Split(val, ","))
}

func removeBlank(slice []string) []string {
	var result []string
	for _, val := range slice {
		if trim := strings.TrimSpace(val); trim != "" {
			result = append(result, trim)
		}
	}
	return result
}

// GetClusterKubeconfigs returns the kubeconfig paths of the clusters the
// harness should watch, in registration order.
func GetClusterKubeconfigs() []string {
	return getStrings(clusterKubeconfigs)
}

// GetClusterNamespace returns the namespace events are listed from. Empty
// means all namespaces.
func GetClusterNamespace() string {
	return getString(clusterNamespace, "")
}

// IsProbeEnabled returns whether new cluster connections are probed before use.
func IsProbeEnabled() bool {
	return getBool(probeEnable, true)
}

// GetProbeTimeout returns the maximum time spent probing a new cluster
// connection.
func GetProbeTimeout() time.Duration {
	return time.Duration(getInt(probeTimeoutSecond, 30)) * time.Second
}
