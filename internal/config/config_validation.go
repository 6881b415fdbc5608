// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// shared invariants before it is used at startup.
//
// The shared config is consumed by two binaries with different required
// fields, so cross-field rules live in the per-binary views
// ([ClientConfig.validate] and the server's startup checks).
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.MasterKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
