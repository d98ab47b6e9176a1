// Package workflow declares which post status transitions are legal for which
// role. The table is the single source of truth for the post lifecycle:
// DRAFT -> IN_REVIEW (author), IN_REVIEW -> PUBLISHED or REJECTED (editor),
// REJECTED -> DRAFT (author resubmission). PUBLISHED is terminal.
package workflow

import "blog-publishing-platform/internal/domain"

// transitions maps a current status to the statuses each role may move it to.
// Absence from the table means the transition is illegal, which also rejects
// self-transitions and every edge out of PUBLISHED.
var transitions = map[domain.Status]map[domain.Role][]domain.Status{
	domain.StatusDraft: {
		domain.RoleAuthor: {domain.StatusInReview},
		domain.RoleEditor: {},
	},
	domain.StatusInReview: {
		domain.RoleAuthor: {},
		domain.RoleEditor: {domain.StatusPublished, domain.StatusRejected},
	},
	domain.StatusRejected: {
		domain.RoleAuthor: {domain.StatusDraft},
		domain.RoleEditor: {},
	},
	domain.StatusPublished: {
		domain.RoleAuthor: {},
		domain.RoleEditor: {},
	},
}

// CanTransition reports whether the given role may move a post from one
// status to another. It is total: any combination of inputs, including
// unknown values, yields a boolean.
func CanTransition(from, to domain.Status, role domain.Role) bool {
	for _, allowed := range transitions[from][role] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the statuses the role may move a post to from the
// given status. The result is empty for terminal states.
func AllowedTargets(from domain.Status, role domain.Role) []domain.Status {
	allowed := transitions[from][role]
	targets := make([]domain.Status, len(allowed))
	copy(targets, allowed)
	return targets
}
