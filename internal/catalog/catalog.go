package catalog

import (
	"fmt"
	"sort"

	"github.com/techtool/opd-api/internal/model"
)

// Catalog is a read-only set of clinic profiles. It is built once at startup
// and safe for concurrent reads. Unknown keys resolve to the default clinic
// rather than failing; callers that need to distinguish use Lookup.
type Catalog struct {
	profiles   map[string]model.ClinicProfile
	defaultKey string
}

// New builds a catalog from the given profiles. defaultKey must name one of
// the profiles.
func New(profiles []model.ClinicProfile, defaultKey string) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("catalog requires at least one clinic profile")
	}
	m := make(map[string]model.ClinicProfile, len(profiles))
	for _, p := range profiles {
		if p.Key == "" {
			return nil, fmt.Errorf("clinic profile %q has no key", p.Name)
		}
		if _, dup := m[p.Key]; dup {
			return nil, fmt.Errorf("duplicate clinic key %q", p.Key)
		}
		m[p.Key] = p
	}
	if _, ok := m[defaultKey]; !ok {
		return nil, fmt.Errorf("default clinic key %q not in catalog", defaultKey)
	}
	return &Catalog{profiles: m, defaultKey: defaultKey}, nil
}

// DefaultKey returns the key unknown clinics resolve to.
func (c *Catalog) DefaultKey() string {
	return c.defaultKey
}

// Lookup returns the profile for key and whether it was present.
func (c *Catalog) Lookup(key string) (model.ClinicProfile, bool) {
	p, ok := c.profiles[key]
	return p, ok
}

// Resolve returns the profile for key, falling back to the default profile
// when the key is unknown. Lenient by contract: an unknown clinic is not an
// error condition.
func (c *Catalog) Resolve(key string) model.ClinicProfile {
	if p, ok := c.profiles[key]; ok {
		return p
	}
	return c.profiles[c.defaultKey]
}

// List returns all profiles ordered by key.
func (c *Catalog) List() []model.ClinicProfile {
	out := make([]model.ClinicProfile, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
