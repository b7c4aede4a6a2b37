// Package config defines the Almanac's bounded-capacity and storage-mode
// settings, optionally loaded from a YAML file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AlmanacConfig bounds the resources an Almanac may hold and records a
// storage-mode flag. UseMmap is not read by the loader: kernel bytes always
// come from mmapfile.Open (memory-mapped on unix, read onto the heap
// elsewhere) whatever its value.
type AlmanacConfig struct {
	MaxSPKKernels int  `yaml:"max_spk_kernels"`
	MaxBPCKernels int  `yaml:"max_bpc_kernels"`
	MaxPCAEntries int  `yaml:"max_pca_entries"`
	MaxEPAEntries int  `yaml:"max_epa_entries"`
	UseMmap       bool `yaml:"use_mmap"`
}

// DefaultConfig returns the default AlmanacConfig: 32 SPK/BPC kernel slots,
// 256 PCA entries, 32 EPA entries, UseMmap set to true.
func DefaultConfig() AlmanacConfig {
	return AlmanacConfig{
		MaxSPKKernels: 32,
		MaxBPCKernels: 32,
		MaxPCAEntries: 256,
		MaxEPAEntries: 32,
		UseMmap:       true,
	}
}

// LoadFile reads and parses a YAML AlmanacConfig file, filling in
// DefaultConfig's values for any field the file omits.
func LoadFile(path string) (AlmanacConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading almanac config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing almanac config file")
	}
	return cfg, nil
}
