package infra

import (
	"fmt"
	"os"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer loads the casbin model from disk. Policies are not read
// from a file; the rbac service installs the static grant table after
// construction.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("rbac model %s: %w", modelPath, err)
	}
	return casbin.NewEnforcer(modelPath)
}
