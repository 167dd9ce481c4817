// Package rulebook holds the fixed catalog of booking categories: which
// authority combinations may approve each one and what a room costs per day.
package rulebook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

// Combination is a multiset of authority kinds that must be selected together.
type Combination []domain.RoleKind

type Category struct {
	Code         domain.Category
	Title        string
	Tariff       map[domain.RoomType]int
	Combinations []Combination
	// RequiresDocuments marks categories whose edits must keep at least one
	// supporting document attached.
	RequiresDocuments bool
}

// Authorities lists the qualified offices for kinds that need one.
// Kinds missing from the map must appear unqualified.
type Authorities map[domain.RoleKind][]string

// Rulebook is immutable after New.
type Rulebook struct {
	categories  map[domain.Category]Category
	authorities map[domain.RoleKind]map[string]struct{}
}

func New(categories []Category, authorities Authorities) *Rulebook {
	rb := &Rulebook{
		categories:  make(map[domain.Category]Category, len(categories)),
		authorities: make(map[domain.RoleKind]map[string]struct{}, len(authorities)),
	}
	for _, c := range categories {
		tariff := make(map[domain.RoomType]int, len(c.Tariff))
		for k, v := range c.Tariff {
			tariff[k] = v
		}
		combos := make([]Combination, 0, len(c.Combinations))
		for _, combo := range c.Combinations {
			combos = append(combos, sortedKinds(combo))
		}
		c.Tariff = tariff
		c.Combinations = combos
		rb.categories[c.Code] = c
	}
	for kind, offices := range authorities {
		set := make(map[string]struct{}, len(offices))
		for _, o := range offices {
			set[strings.ToUpper(o)] = struct{}{}
		}
		rb.authorities[kind] = set
	}
	return rb
}

func (rb *Rulebook) Category(code domain.Category) (Category, bool) {
	c, ok := rb.categories[code]
	return c, ok
}

func (rb *Rulebook) Categories() []Category {
	res := make([]Category, 0, len(rb.categories))
	for _, c := range rb.categories {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Code < res[j].Code })
	return res
}

// RoomRate is the per-room-per-day rate; unknown inputs rate 0.
func (rb *Rulebook) RoomRate(code domain.Category, roomType domain.RoomType) int {
	c, ok := rb.categories[code]
	if !ok {
		return 0
	}
	return c.Tariff[roomType]
}

// Cost of a stay. Negative counts bill nothing.
func (rb *Rulebook) Cost(code domain.Category, roomType domain.RoomType, rooms, days int) int {
	if rooms <= 0 || days <= 0 {
		return 0
	}
	return days * rooms * rb.RoomRate(code, roomType)
}

// KnownAuthority reports whether the role names an authority in the catalog.
func (rb *Rulebook) KnownAuthority(r domain.Role) bool {
	if !r.IsAuthority() {
		return false
	}
	offices, qualified := rb.authorities[r.Kind]
	if !qualified {
		return r.Qualifier == ""
	}
	_, ok := offices[r.Qualifier]
	return ok
}

// ValidateReviewers checks the selected role strings against the category rule.
func (rb *Rulebook) ValidateReviewers(code domain.Category, roles []string) error {
	c, ok := rb.categories[code]
	if !ok {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, code)
	}
	if len(roles) == 0 {
		return fmt.Errorf("%w: reviewers are required", domain.ErrValidation)
	}

	kinds := make(Combination, 0, len(roles))
	seen := make(map[string]struct{}, len(roles))
	for _, s := range roles {
		r := domain.ParseRole(s)
		if !rb.KnownAuthority(r) {
			return fmt.Errorf("%w: %q is not an approving authority", domain.ErrValidation, s)
		}
		if _, dup := seen[r.String()]; dup {
			return fmt.Errorf("%w: %q selected twice", domain.ErrValidation, s)
		}
		seen[r.String()] = struct{}{}
		kinds = append(kinds, r.Kind)
	}

	kinds = sortedKinds(kinds)
	for _, combo := range c.Combinations {
		if equalKinds(kinds, combo) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s requires %s", domain.ErrValidation, code, describe(c.Combinations))
}

// Accepts is the boolean form of ValidateReviewers.
func (rb *Rulebook) Accepts(code domain.Category, roles []string) bool {
	return rb.ValidateReviewers(code, roles) == nil
}

func sortedKinds(in Combination) Combination {
	out := append(Combination(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalKinds(a, b Combination) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func describe(combos []Combination) string {
	parts := make([]string, 0, len(combos))
	for _, combo := range combos {
		names := make([]string, 0, len(combo))
		for _, k := range combo {
			names = append(names, domain.Role{Kind: k}.String())
		}
		parts = append(parts, strings.Join(names, " + "))
	}
	return strings.Join(parts, " or ")
}
