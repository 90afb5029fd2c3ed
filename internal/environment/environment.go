package environment

import (
	"aggregat4/clientenv/internal/domain"
	"errors"
	"fmt"
	"sort"
)

const DefaultName = "development"

var ErrUnknownEnvironment = errors.New("unknown environment")

// The values of the client template. Deployments are expected to replace them through a config file.
var defaultEnvironment = domain.NewEnvironment(
	false,
	"http://127.0.0.1:5000",
	domain.NewIdentityProvider(
		"almmello-coffee-shop.us",
		"cshop",
		"oYQXEqAcKNFo1tZBM44zZaDovcIrS8tO",
		"http://localhost:8100",
	),
)

// Default returns the built-in environment. Every call returns the same instance.
func Default() *domain.Environment {
	return defaultEnvironment
}

// Holder keeps a fixed set of named environments and the one that is active for this process.
type Holder struct {
	selected     string
	environments map[string]*domain.Environment
}

func NewHolder(selected string, environments map[string]*domain.Environment) (*Holder, error) {
	if _, ok := environments[selected]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, selected)
	}
	copied := make(map[string]*domain.Environment, len(environments))
	for name, env := range environments {
		if env == nil {
			return nil, fmt.Errorf("environment %q is nil", name)
		}
		copied[name] = env
	}
	return &Holder{selected: selected, environments: copied}, nil
}

// DefaultHolder wraps the built-in environment under DefaultName.
func DefaultHolder() *Holder {
	return &Holder{
		selected:     DefaultName,
		environments: map[string]*domain.Environment{DefaultName: defaultEnvironment},
	}
}

func (h *Holder) Current() *domain.Environment {
	return h.environments[h.selected]
}

func (h *Holder) Selected() string {
	return h.selected
}

func (h *Holder) Get(name string) (*domain.Environment, error) {
	env, ok := h.environments[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
	return env, nil
}

func (h *Holder) Names() []string {
	names := make([]string, 0, len(h.environments))
	for name := range h.environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
