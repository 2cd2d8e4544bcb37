// Package config reads project configuration from .kotolint.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kotolint/kotolint/internal/domain"
)

const fileName = ".kotolint.yaml"

// YAMLLoader reads .kotolint.yaml from a project directory.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// Load returns the file's settings merged over the defaults. A missing
// file just yields the defaults.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
