package app

import (
	"fmt"
	"strings"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/errors"
)

// parseKinds turns --kinds values into resource kinds. Entries may themselves
// be comma separated; "all" or an empty list selects every kind.
func parseKinds(values []string) ([]domain.ResourceKind, error) {
	seen := make(map[domain.ResourceKind]bool)
	var kinds []domain.ResourceKind
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			name := strings.ToLower(strings.TrimSpace(part))
			if name == "" {
				continue
			}
			if name == "all" {
				return nil, nil
			}
			kind := domain.ResourceKind(name)
			if _, ok := domain.LookupKind(kind); !ok {
				return nil, errors.NewUserFacing(errors.CodeConfigValidation,
					fmt.Sprintf("unknown resource kind '%s'", name),
					"Valid kinds: "+kindNames()+".")
			}
			if !seen[kind] {
				seen[kind] = true
				kinds = append(kinds, kind)
			}
		}
	}
	return kinds, nil
}

func kindNames() string {
	names := make([]string, 0, len(domain.ImportOrder))
	for _, k := range domain.ImportOrder {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
