package badge

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// StyleManifestDocument models a YAML manifest overriding badge styles, so
// deployments can re-brand status colors without a rebuild.
type StyleManifestDocument struct {
	Version string           `json:"version" yaml:"version"`
	Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
	Domains []ManifestDomain `json:"domains" yaml:"domains"`
	Source  string           `json:"-" yaml:"-"`
}

// ManifestDomain groups style overrides for one enum domain.
type ManifestDomain struct {
	Domain   string           `json:"domain" yaml:"domain"`
	Styles   map[string]Style `json:"styles" yaml:"styles"`
	Fallback *Style           `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// LoadManifestFile reads a manifest from disk and registers it against the registry.
func (r *Registry) LoadManifestFile(path string) (*StyleManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument registers styles from a decoded manifest.
func (r *Registry) LoadManifestDocument(doc *StyleManifestDocument) error {
	if doc == nil {
		return fmt.Errorf("badge: manifest document is nil")
	}
	for _, entry := range doc.Domains {
		for value, style := range entry.Styles {
			if err := r.Register(entry.Domain, value, style); err != nil {
				return fmt.Errorf("badge: register style %s/%s from %s: %w", entry.Domain, value, doc.Source, err)
			}
		}
		if entry.Fallback != nil {
			if err := r.RegisterFallback(entry.Domain, *entry.Fallback); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*StyleManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("badge: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("badge: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*StyleManifestDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc StyleManifestDocument
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("badge: manifest is empty")
		}
		return nil, fmt.Errorf("badge: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the manifest satisfies required fields.
func (doc *StyleManifestDocument) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("badge: unsupported manifest version %q", doc.Version)
	}
	seen := make(map[string]struct{}, len(doc.Domains))
	for idx, entry := range doc.Domains {
		if entry.Domain == "" {
			return fmt.Errorf("badge: manifest domain at index %d is missing its name", idx)
		}
		if _, exists := seen[entry.Domain]; exists {
			return fmt.Errorf("badge: manifest duplicates domain %s", entry.Domain)
		}
		seen[entry.Domain] = struct{}{}
	}
	return nil
}

func (doc *StyleManifestDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
}
