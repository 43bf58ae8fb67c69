package service

import (
	"fmt"
	"sync"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
	"github.com/olusolaa/axonops-importer/internal/errors"
)

// ComponentRegistry holds one exporter per kind and hands them out in the
// fixed import order, whatever order they were registered in.
type ComponentRegistry struct {
	mu        sync.RWMutex
	exporters map[domain.ResourceKind]ports.ResourceExporter
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		exporters: make(map[domain.ResourceKind]ports.ResourceExporter),
	}
}

func (r *ComponentRegistry) RegisterExporter(exporter ports.ResourceExporter) error {
	if exporter == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil resource exporter")
	}
	kind := exporter.Kind()
	if kind == "" {
		return errors.New(errors.CodeInternal, "resource exporter kind cannot be empty")
	}
	if _, known := domain.LookupKind(kind); !known {
		return errors.New(errors.CodeInternal, fmt.Sprintf("resource exporter kind '%s' is not a known kind", kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.exporters[kind]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("resource exporter for kind '%s' already registered", kind))
	}
	r.exporters[kind] = exporter
	return nil
}

func (r *ComponentRegistry) GetExporter(kind domain.ResourceKind) (ports.ResourceExporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exporter, exists := r.exporters[kind]
	if !exists {
		return nil, errors.New(errors.CodeNotImplemented, fmt.Sprintf("resource exporter for kind '%s' not implemented", kind))
	}
	return exporter, nil
}

// Ordered returns the registered exporters in import order. When selected is
// non-empty only those kinds are returned; asking for an unregistered kind
// is a configuration error.
func (r *ComponentRegistry) Ordered(selected []domain.ResourceKind) ([]ports.ResourceExporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[domain.ResourceKind]bool, len(selected))
	for _, kind := range selected {
		if _, exists := r.exporters[kind]; !exists {
			return nil, errors.NewUserFacing(errors.CodeConfigValidation,
				fmt.Sprintf("unknown resource kind '%s'", kind),
				"Valid kinds are topics, acls, schemas, connectors, logcollectors, healthchecks and alert_rules.")
		}
		want[kind] = true
	}

	ordered := make([]ports.ResourceExporter, 0, len(r.exporters))
	for _, kind := range domain.ImportOrder {
		exporter, exists := r.exporters[kind]
		if !exists {
			continue
		}
		if len(want) > 0 && !want[kind] {
			continue
		}
		ordered = append(ordered, exporter)
	}
	return ordered, nil
}
