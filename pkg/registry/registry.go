// Package registry maps registration IDs to node builders and their
// port manifests. The tree-construction layer uses it to instantiate
// nodes by type name and to learn which ports each type declares.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/arbor/pkg/core"
	"github.com/aretw0/arbor/pkg/domain"
)

// Builder constructs a node instance. The caller provides the instance
// name and a fully populated configuration (blackboard, remapping).
type Builder func(name string, cfg core.Config) (core.Node, error)

// Registry manages the available node types.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	manifest domain.Manifest
	build    Builder
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds a node type under manifest.RegistrationID.
// If a type with the same ID exists, it is overwritten.
func (r *Registry) Register(manifest domain.Manifest, build Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[manifest.RegistrationID] = entry{manifest: manifest, build: build}
}

// Build instantiates a node of the registered type. The registration ID
// is stamped into the configuration so the instance reports it.
func (r *Registry) Build(registrationID, name string, cfg core.Config) (core.Node, error) {
	r.mu.RLock()
	e, ok := r.entries[registrationID]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("node type not registered: %s", registrationID)
	}

	cfg.RegistrationID = registrationID
	return e.build(name, cfg)
}

// Manifest returns the manifest registered under the given ID.
func (r *Registry) Manifest(registrationID string) (domain.Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[registrationID]
	return e.manifest, ok
}

// Manifests returns every registered manifest, sorted by registration ID
// for deterministic output.
func (r *Registry) Manifests() []domain.Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	manifests := make([]domain.Manifest, 0, len(r.entries))
	for _, e := range r.entries {
		manifests = append(manifests, e.manifest)
	}
	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].RegistrationID < manifests[j].RegistrationID
	})
	return manifests
}

// WriteManifests emits the registered manifests as YAML, for
// tree-construction tooling and editors.
func (r *Registry) WriteManifests(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r.Manifests())
}
