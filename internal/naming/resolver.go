package naming

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Resolver maps loosely typed player input onto canonical names
type Resolver interface {
	// Resolve returns the canonical name for input, tolerating case, spacing and small typos
	Resolve(input string) (canonical string, ok bool)

	// Register adds a canonical name together with any number of aliases
	Register(canonical string, aliases ...string)

	// Suggestions returns up to limit canonical names closest to input
	Suggestions(input string, limit int) []string
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: normalized alias -> canonical
	aliases map[string]string
}

// NewResolver creates an empty resolver
func NewResolver() Resolver {
	return &resolver{aliases: make(map[string]string)}
}

// NewZoneResolver returns a resolver over every zone
func NewZoneResolver() Resolver {
	r := NewResolver()
	for _, z := range domain.AllZones {
		r.Register(string(z), splitCamel(string(z)))
	}
	r.Register(string(domain.ZoneCursedVillage), "village")
	r.Register(string(domain.ZoneMountainPass), "mountain", "mountains")
	return r
}

// NewIngredientResolver returns a resolver over every ingredient
func NewIngredientResolver() Resolver {
	r := NewResolver()
	for _, t := range domain.AllIngredientTypes {
		r.Register(string(t), t.DisplayName())
	}
	return r
}

// Register adds canonical plus its aliases
func (r *resolver) Register(canonical string, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.aliases[normalize(canonical)] = canonical
	for _, a := range aliases {
		if n := normalize(a); n != "" {
			r.aliases[n] = canonical
		}
	}
}

// Resolve tries exact, then unique prefix, then bounded edit distance
func (r *resolver) Resolve(input string) (string, bool) {
	in := normalize(input)
	if in == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if canonical, ok := r.aliases[in]; ok {
		return canonical, true
	}

	if len(in) >= MinPrefixLength {
		var hit string
		for alias, canonical := range r.aliases {
			if !strings.HasPrefix(alias, in) {
				continue
			}
			if hit != "" && hit != canonical {
				hit = ""
				break
			}
			hit = canonical
		}
		if hit != "" {
			return hit, true
		}
	}

	if len(in) < MinFuzzyLength {
		return "", false
	}

	best, bestDist, tied := "", -1, false
	for alias, canonical := range r.aliases {
		dist := levenshtein.ComputeDistance(in, alias)
		if dist > distanceLimit(len(alias)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, tied = canonical, dist, false
		case dist == bestDist && canonical != best:
			tied = true
		}
	}
	if bestDist < 0 || tied {
		return "", false
	}
	return best, true
}

// Suggestions ranks canonical names by edit distance to input
func (r *resolver) Suggestions(input string, limit int) []string {
	in := normalize(input)

	r.mu.RLock()
	defer r.mu.RUnlock()

	best := make(map[string]int)
	for alias, canonical := range r.aliases {
		d := levenshtein.ComputeDistance(in, alias)
		if cur, ok := best[canonical]; !ok || d < cur {
			best[canonical] = d
		}
	}

	names := make([]string, 0, len(best))
	for name := range best {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if best[names[i]] == best[names[j]] {
			return names[i] < names[j]
		}
		return best[names[i]] < best[names[j]]
	})
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// normalize lowercases and strips everything but letters and digits
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitCamel turns "CursedVillage" into "Cursed Village"
func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
