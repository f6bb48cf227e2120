package multisig

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Manifest is the YAML description of a group: its configuration and the
// hex keys of its participants in enrollment order.
type Manifest struct {
	ID           string   `yaml:"id"`
	Threshold    int      `yaml:"threshold"`
	Capacity     int      `yaml:"capacity"`
	Participants []string `yaml:"participants"`
}

// ManifestFromRegistry captures the current state of r.
func ManifestFromRegistry(r *Registry) *Manifest {
	keys := r.PublicKeys()
	m := &Manifest{
		ID:           r.ID(),
		Threshold:    r.Threshold(),
		Capacity:     r.Capacity(),
		Participants: make([]string, len(keys)),
	}
	for i, k := range keys {
		m.Participants[i] = k.Hex()
	}
	return m
}

// Registry builds a registry from the manifest, enrolling participants in
// file order. A manifest without an id gets a fresh one.
func (m *Manifest) Registry() (*Registry, error) {
	var (
		r   *Registry
		err error
	)
	if m.ID == "" {
		r, err = NewRegistry(m.Threshold, m.Capacity)
	} else {
		r, err = newRegistry(m.ID, m.Threshold, m.Capacity)
	}
	if err != nil {
		return nil, err
	}
	for i, key := range m.Participants {
		if _, err := r.EnrollHex(key); err != nil {
			return nil, errors.Wrapf(err, "participant %d", i)
		}
	}
	return r, nil
}

// LoadManifest reads a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parse manifest %s", path)
	}
	return &m, nil
}

// SaveManifest writes m as YAML.
func SaveManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
