// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
)

// ManifestName is the file name of the run manifest inside the output folder.
const ManifestName = "params.yaml"

// FileSummary describes the processing of one input network.
type FileSummary struct {
	Name    string        `yaml:"name"`
	Nodes   int           `yaml:"nodes"`
	Edges   int           `yaml:"edges"`
	Failed  int           `yaml:"failed"`
	Elapsed time.Duration `yaml:"elapsed"`
}

// Manifest records the parameters of a run and what it processed.
type Manifest struct {
	Params    diffusion.Params `yaml:"params"`
	Workers   int              `yaml:"workers"`
	CreatedAt time.Time        `yaml:"created_at"`
	Files     []FileSummary    `yaml:"files"`
}

// WriteManifest encodes m as YAML at path.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("report: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: manifest: %w", err)
	}

	return nil
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("report: manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("report: manifest %s: %w", path, err)
	}

	return m, nil
}
