// Package manifest loads the requirements file: the ordered lists of system
// packages, runtime modules, and container images a workflow needs before it
// can run. The file is read-only input; nothing here writes it back.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML requirements file.
//
//	system:
//	  - git
//	  - nmap
//	modules:
//	  - encoding/json
//	images:
//	  - nginx:1.25
type Manifest struct {
	System  []string `yaml:"system"`
	Modules []string `yaml:"modules"`
	Images  []string `yaml:"images"`
}

// Load reads and parses a manifest file. Unknown keys are rejected so a typo
// like "pakages:" fails loudly instead of silently verifying nothing.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// IsEmpty reports whether the manifest lists nothing to verify.
func (m *Manifest) IsEmpty() bool {
	return len(m.System) == 0 && len(m.Modules) == 0 && len(m.Images) == 0
}
