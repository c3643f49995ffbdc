package badge

import (
	"fmt"
	"sync"

	"github.com/ettle/strcase"
)

// Style is the presentation attached to one enum value: a color class for the
// badge plus an optional icon name.
type Style struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Registry maps (domain, value) pairs to badge styles. Unrecognized values
// resolve to the domain fallback, then to the global fallback.
type Registry struct {
	mu        sync.RWMutex
	styles    map[string]map[string]Style
	fallbacks map[string]Style
}

// NewRegistry builds a registry seeded with the default styles. Deployments
// override them with a style manifest, see LoadManifestFile.
func NewRegistry() *Registry {
	reg := &Registry{
		styles:    map[string]map[string]Style{},
		fallbacks: map[string]Style{},
	}
	reg.registerDefaults()
	return reg
}

// Register stores a style for a (domain, value) pair.
func (r *Registry) Register(domain, value string, style Style) error {
	if domain == "" {
		return fmt.Errorf("badge domain is required")
	}
	if value == "" {
		return fmt.Errorf("badge value is required")
	}
	if style.Label == "" {
		style.Label = strcase.ToCase(value, strcase.TitleCase, ' ')
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.styles[domain]; !ok {
		r.styles[domain] = map[string]Style{}
	}
	r.styles[domain][value] = style
	return nil
}

// RegisterFallback stores the style used for unrecognized values of a domain.
func (r *Registry) RegisterFallback(domain string, style Style) error {
	if domain == "" {
		return fmt.Errorf("badge domain is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbacks[domain] = style
	return nil
}

// Style resolves the badge style for a (domain, value) pair.
func (r *Registry) Style(domain, value string) Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if values, ok := r.styles[domain]; ok {
		if style, ok := values[value]; ok {
			return style
		}
	}
	if fallback, ok := r.fallbacks[domain]; ok {
		return fallback
	}
	label := value
	if label == "" {
		label = "Unknown"
	} else {
		label = strcase.ToCase(label, strcase.TitleCase, ' ')
	}
	return Style{Label: label, Color: "gray"}
}

// Domains returns all registered domains.
func (r *Registry) Domains() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	domains := make([]string, 0, len(r.styles))
	for domain := range r.styles {
		domains = append(domains, domain)
	}
	return domains
}
