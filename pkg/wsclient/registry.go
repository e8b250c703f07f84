package wsclient

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Service is the network location of a named web service.
type Service struct {
	Domain string `yaml:"domain"` // ex: "records.openswim.org"
	Path   string `yaml:"path"`   // ex: "api/records", no leading slash
}

// Registry maps logical service names to their locations. It is built at
// startup and never mutated afterwards; there is no runtime registration.
type Registry map[string]Service

// DefaultRegistry pre-registers the two record databases. They differ only
// by target domain.
func DefaultRegistry() Registry {
	return Registry{
		"records": {
			Domain: "records.openswim.org",
			Path:   "api/records",
		},
		"records-dev": {
			Domain: "records-dev.openswim.org",
			Path:   "api/records",
		},
	}
}

// Lookup resolves a service name.
func (r Registry) Lookup(name string) (Service, bool) {
	svc, ok := r[name]
	return svc, ok
}

// Names returns the registered service names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// registryFile is the on-disk registry shape.
type registryFile struct {
	Services map[string]Service `yaml:"services"`
}

// LoadRegistry reads a YAML registry file. Entries must carry a domain;
// an empty path is allowed and targets the domain root.
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse registry yaml: %w", err)
	}
	if len(f.Services) == 0 {
		return nil, fmt.Errorf("registry file %s defines no services", path)
	}
	for name, svc := range f.Services {
		if svc.Domain == "" {
			return nil, fmt.Errorf("service %q has no domain", name)
		}
	}

	return Registry(f.Services), nil
}
