package persist

import (
	"sort"

	"github.com/viant/settingsync/settings"
)

// excludedWithoutField lists names that are excluded even though the store
// declares no field for them.
var excludedWithoutField = []string{"DEFAULT_BLOCKED_MODELS"}

// ExclusionPolicy is the immutable set of setting names that are never
// persisted nor reloaded.
type ExclusionPolicy struct {
	names map[string]bool
}

// NewExclusionPolicy builds the policy from the transient fields of the table plus extra names
func NewExclusionPolicy(fields []settings.Field, extra ...string) *ExclusionPolicy {
	p := &ExclusionPolicy{names: make(map[string]bool)}
	for _, field := range fields {
		if field.Transient {
			p.names[field.Name] = true
		}
	}
	for _, name := range excludedWithoutField {
		p.names[name] = true
	}
	for _, name := range extra {
		p.names[name] = true
	}
	return p
}

// IsExcluded reports whether name must stay out of snapshots
func (p *ExclusionPolicy) IsExcluded(name string) bool {
	return p.names[name]
}

// Names returns the sorted excluded names
func (p *ExclusionPolicy) Names() []string {
	ret := make([]string, 0, len(p.names))
	for name := range p.names {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
