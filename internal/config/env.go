// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Names are the group
// prefix plus the field tag, e.g. ADAPTER_ADDRESS or STORAGE_SESSION_DSN;
// CONFIG names the JSON file. Unset variables leave their fields zero.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}
	return nil
}
