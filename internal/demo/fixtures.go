// Package demo serves every console page from bundled fixtures. It is wired
// in when DATA_SOURCE=demo; the live backend is never consulted and failures
// never fall through to this package silently.
package demo

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/feastly/admin-console/internal/model"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixtures is the full seed data set for a demo console.
type Fixtures struct {
	Banners      []model.Banner             `yaml:"banners"`
	Coupons      []model.Coupon             `yaml:"coupons"`
	Contacts     []model.ContactSubmission  `yaml:"contacts"`
	Partners     []model.DeliveryPartner    `yaml:"delivery_partners"`
	Applications []model.PartnerApplication `yaml:"partner_applications"`
	Orders       []model.Order              `yaml:"orders"`
	Payments     []model.Payment            `yaml:"payments"`
	Restaurants  []model.Restaurant         `yaml:"restaurants"`
	Users        []model.User               `yaml:"users"`
	Settings     model.PlatformSettings     `yaml:"settings"`
	Profile      model.Profile              `yaml:"profile"`
	OrdersByDay  []model.DailyMetric        `yaml:"orders_by_day"`
	RevenueByDay []model.DailyMetric        `yaml:"revenue_by_day"`
}

// Validate rejects fixture sets with duplicate identifiers so a bad edit to
// the seed file fails at startup rather than during a page render.
func (f Fixtures) Validate() error {
	seen := map[string]string{}
	check := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("demo: %s fixture with empty id", kind)
		}
		key := kind + "/" + id
		if _, dup := seen[key]; dup {
			return fmt.Errorf("demo: duplicate %s fixture %q", kind, id)
		}
		seen[key] = kind
		return nil
	}
	for _, b := range f.Banners {
		if err := check("banner", b.ID); err != nil {
			return err
		}
	}
	for _, c := range f.Coupons {
		if err := check("coupon", c.ID); err != nil {
			return err
		}
	}
	for _, c := range f.Contacts {
		if err := check("contact", c.ID); err != nil {
			return err
		}
	}
	for _, p := range f.Partners {
		if err := check("partner", p.ID); err != nil {
			return err
		}
	}
	for _, a := range f.Applications {
		if err := check("application", a.ID); err != nil {
			return err
		}
	}
	for _, o := range f.Orders {
		if err := check("order", o.ID); err != nil {
			return err
		}
	}
	for _, p := range f.Payments {
		if err := check("payment", p.ID); err != nil {
			return err
		}
	}
	for _, r := range f.Restaurants {
		if err := check("restaurant", r.ID); err != nil {
			return err
		}
	}
	for _, u := range f.Users {
		if err := check("user", u.ID); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFixtures parses a fixture document. Unknown YAML keys are rejected so
// typos in the seed file surface immediately.
func DecodeFixtures(data []byte) (Fixtures, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var fixtures Fixtures
	if err := decoder.Decode(&fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("demo: parse fixtures: %w", err)
	}
	if err := fixtures.Validate(); err != nil {
		return Fixtures{}, err
	}
	return fixtures, nil
}

// DefaultFixtures returns the seed data compiled into the binary.
func DefaultFixtures() (Fixtures, error) {
	return DecodeFixtures(fixturesYAML)
}
