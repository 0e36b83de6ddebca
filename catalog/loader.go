package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"realtyhub/models"
)

// SeedFile is the on-disk layout of a catalog seed. YAML and JSON files are
// both accepted since every JSON document is valid YAML.
type SeedFile struct {
	Locations []string         `yaml:"locations"`
	Listings  []models.Listing `yaml:"listings"`
}

// LoadFile reads a seed file. The listings are returned as written; run them
// through services.Cleaner before building a Repository.
func LoadFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read seed %q: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a seed document.
func ParseSeed(data []byte) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("catalog: decode seed: %w", err)
	}
	return &seed, nil
}

// MarshalSeed encodes the repository contents as a YAML seed document.
func MarshalSeed(r *Repository) ([]byte, error) {
	seed := SeedFile{Locations: r.Locations(), Listings: r.All()}
	data, err := yaml.Marshal(&seed)
	if err != nil {
		return nil, fmt.Errorf("catalog: encode seed: %w", err)
	}
	return data, nil
}
