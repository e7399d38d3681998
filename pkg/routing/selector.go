// Package routing picks a provider and model for a requested capability.
package routing

import (
	"sort"

	"github.com/lumen-ai/prism/pkg/registry"
)

// Selection is the outcome of a routing decision.
type Selection struct {
	Provider registry.ProviderID
	Model    string
}

// Options tune a single selection.
type Options struct {
	// PreferFree biases scoring toward free and trial providers and, when
	// the winner offers free models, picks the first free model instead of
	// the default.
	PreferFree bool

	// Allowlist restricts candidates to the named providers. Empty means
	// every registry entry is eligible.
	Allowlist []registry.ProviderID
}

// Selector ranks registry entries for capability-based dispatch.
type Selector struct {
	registry *registry.Registry
}

// NewSelector creates a selector over the given catalog.
func NewSelector(reg *registry.Registry) *Selector {
	return &Selector{registry: reg}
}

type candidate struct {
	id    registry.ProviderID
	entry *registry.Entry
	score int
}

// Select returns the best (provider, model) pair for a capability.
//
// Candidates must advertise the capability and offer at least one
// requestable model. Scoring is additive: free and trial providers earn 30
// when free routing is preferred, any provider with a free model earns 10,
// and paid providers earn 1. Ties keep catalog order, so selection is
// deterministic for a fixed registry.
//
// When free routing is preferred, the sorted candidates are walked until
// one offers a free model; that model wins even if a higher-scoring
// candidate has none. With no free model anywhere, the top candidate's
// default model is used. The second return is false when no candidate
// qualifies.
func (s *Selector) Select(capability registry.Capability, opts Options) (Selection, bool) {
	allowed := func(id registry.ProviderID) bool {
		if len(opts.Allowlist) == 0 {
			return true
		}
		for _, want := range opts.Allowlist {
			if id == want {
				return true
			}
		}
		return false
	}

	var candidates []candidate
	for _, id := range s.registry.All() {
		entry, ok := s.registry.Get(id)
		if !ok || !allowed(id) {
			continue
		}
		if !s.eligible(entry, capability) {
			continue
		}
		candidates = append(candidates, candidate{
			id:    id,
			entry: entry,
			score: score(entry, opts.PreferFree),
		})
	}
	if len(candidates) == 0 {
		return Selection{}, false
	}

	// Stable sort keeps catalog order among equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if opts.PreferFree {
		for _, c := range candidates {
			if free, ok := c.entry.FirstFreeModel(); ok {
				return Selection{Provider: c.id, Model: free}, true
			}
		}
	}

	best := candidates[0]
	return Selection{Provider: best.id, Model: best.entry.DefaultModel}, true
}

// eligible reports whether an entry can serve the capability at all.
//
// Text is the baseline capability: any entry with a default model can
// serve plain text, tagged or not. Other capabilities require an explicit
// tag.
func (s *Selector) eligible(entry *registry.Entry, capability registry.Capability) bool {
	if entry.DefaultModel == "" {
		return false
	}
	if capability == registry.CapabilityText {
		return true
	}
	return entry.HasCapability(capability)
}

func score(entry *registry.Entry, preferFree bool) int {
	n := 0
	if preferFree && (entry.Category == registry.CategoryFree || entry.Category == registry.CategoryTrial) {
		n += 30
	}
	if len(entry.FreeModels) > 0 {
		n += 10
	}
	if entry.Category == registry.CategoryPaid {
		n++
	}
	return n
}
