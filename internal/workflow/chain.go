// Package workflow builds reviewer chains and folds reviewer decisions into
// the overall reservation status. Nothing here touches storage; state
// changes come back as effects for the caller to apply.
package workflow

import (
	"fmt"
	"strings"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/rulebook"
)

const (
	EditedComment = "Form edited by user"
	noSubrole     = "Select"
)

type ChainBuilder struct {
	rules *rulebook.Rulebook
}

func NewChainBuilder(rules *rulebook.Rulebook) *ChainBuilder {
	return &ChainBuilder{rules: rules}
}

// Build is the guest submission path: the selection is checked against the
// category rule and ADMIN is put in front.
func (b *ChainBuilder) Build(category domain.Category, reviewers, subroles string) ([]domain.Reviewer, error) {
	roles := composeRoles(reviewers, subroles)
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: reviewers are required", domain.ErrValidation)
	}
	if err := b.rules.ValidateReviewers(category, roles); err != nil {
		return nil, err
	}
	return chain(roles, ""), nil
}

// BuildForAdmin is the admin proxy path. It is exempt from the category
// rule so admins can book for guests that fit no single rule, but every
// named reviewer must still be an authority someone can sign in as.
func (b *ChainBuilder) BuildForAdmin(reviewers, subroles string) ([]domain.Reviewer, error) {
	roles := composeRoles(reviewers, subroles)
	for _, role := range roles {
		r := domain.ParseRole(role)
		if r.Kind == domain.RoleAdmin {
			continue
		}
		if !b.rules.KnownAuthority(r) {
			return nil, fmt.Errorf("%w: %q is not an approving authority", domain.ErrValidation, role)
		}
	}
	return chain(roles, ""), nil
}

// Rebuild resets the chain after a guest edit. A new selection is validated;
// without one the existing non-admin reviewers are reopened.
func (b *ChainBuilder) Rebuild(category domain.Category, existing []domain.Reviewer, reviewers, subroles string) ([]domain.Reviewer, error) {
	roles := composeRoles(reviewers, subroles)
	if len(roles) > 0 {
		if err := b.rules.ValidateReviewers(category, roles); err != nil {
			return nil, err
		}
		return chain(roles, EditedComment), nil
	}

	for _, r := range existing {
		if domain.ParseRole(r.Role).Kind != domain.RoleAdmin {
			roles = append(roles, r.Role)
		}
	}
	return chain(roles, EditedComment), nil
}

// chain stores roles in canonical form; queue filters and reviewer e-mail
// lookups compare the stored string exactly.
func chain(roles []string, comment string) []domain.Reviewer {
	res := make([]domain.Reviewer, 0, len(roles)+1)
	res = append(res, domain.Reviewer{Role: string(domain.RoleAdmin), Status: domain.StatusPending, Comments: comment})
	for _, role := range roles {
		r := domain.ParseRole(role)
		if r.Kind == domain.RoleAdmin {
			continue
		}
		res = append(res, domain.Reviewer{Role: r.String(), Status: domain.StatusPending, Comments: comment})
	}
	return res
}

// composeRoles splits the comma lists and joins each reviewer with its
// positional subrole.
func composeRoles(reviewers, subroles string) []string {
	var subs []string
	if strings.TrimSpace(subroles) != "" {
		subs = strings.Split(subroles, ",")
	}

	var roles []string
	for i, r := range strings.Split(reviewers, ",") {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if i < len(subs) {
			if s := strings.TrimSpace(subs[i]); s != "" && s != noSubrole {
				r += " " + s
			}
		}
		roles = append(roles, r)
	}
	return roles
}
