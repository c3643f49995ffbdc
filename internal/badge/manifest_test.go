package badge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeManifest(t *testing.T) {
	doc, err := DecodeManifest(strings.NewReader(`
version: "1"
name: "midnight"
domains:
  - domain: "order.status"
    styles:
      delivered:
        color: "teal"
        label: "Dropped Off"
    fallback:
      color: "gray"
`))
	require.NoError(t, err)
	require.Len(t, doc.Domains, 1)
	assert.Equal(t, "order.status", doc.Domains[0].Domain)
	assert.Equal(t, "teal", doc.Domains[0].Styles["delivered"].Color)
	require.NotNil(t, doc.Domains[0].Fallback)
}

func TestDecodeManifestDefaultsVersion(t *testing.T) {
	doc, err := DecodeManifest(strings.NewReader(`
domains:
  - domain: "user.status"
    styles: {}
`))
	require.NoError(t, err)
	assert.Equal(t, ManifestVersion, doc.Version)
}

func TestDecodeManifestRejectsUnknownFields(t *testing.T) {
	_, err := DecodeManifest(strings.NewReader(`
version: "1"
palette: "dark"
domains: []
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse manifest")
}

func TestDecodeManifestRejectsEmptyInput(t *testing.T) {
	_, err := DecodeManifest(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestValidateRejectsDuplicateDomains(t *testing.T) {
	doc := &StyleManifestDocument{
		Version: ManifestVersion,
		Domains: []ManifestDomain{
			{Domain: "order.status"},
			{Domain: "order.status"},
		},
	}
	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicates domain")
}

func TestValidateRejectsUnsupportedVersion(t *testing.T) {
	doc := &StyleManifestDocument{Version: "2"}
	assert.Error(t, doc.Validate())
}

func TestLoadManifestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badges.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1"
domains:
  - domain: "order.status"
    styles:
      delivered:
        color: "teal"
`), 0o644))

	registry := NewRegistry()
	doc, err := registry.LoadManifestFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	assert.Equal(t, "teal", registry.Style(DomainOrderStatus, "delivered").Color)
}

func TestLoadManifestFileMissing(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.LoadManifestFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open manifest")
}

func TestLoadManifestDocumentOverridesStyles(t *testing.T) {
	registry := NewRegistry()
	doc := &StyleManifestDocument{
		Version: ManifestVersion,
		Domains: []ManifestDomain{
			{
				Domain: DomainOrderStatus,
				Styles: map[string]Style{
					"delivered": {Color: "teal", Label: "Dropped Off"},
				},
			},
		},
	}

	require.NoError(t, registry.LoadManifestDocument(doc))
	style := registry.Style(DomainOrderStatus, "delivered")
	assert.Equal(t, "teal", style.Color)
	assert.Equal(t, "Dropped Off", style.Label)
}
