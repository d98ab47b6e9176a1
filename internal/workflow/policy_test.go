package workflow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-publishing-platform/internal/domain"
	"blog-publishing-platform/internal/workflow"
)

// legalEdges is the full set of permitted (from, to, role) triples. Anything
// outside this set must be rejected.
var legalEdges = map[string]bool{
	"DRAFT->IN_REVIEW:AUTHOR":     true,
	"IN_REVIEW->PUBLISHED:EDITOR": true,
	"IN_REVIEW->REJECTED:EDITOR":  true,
	"REJECTED->DRAFT:AUTHOR":      true,
}

func edgeKey(from, to domain.Status, role domain.Role) string {
	return fmt.Sprintf("%s->%s:%s", from, to, role)
}

func TestCanTransition_ExhaustiveTable(t *testing.T) {
	for _, from := range domain.Statuses {
		for _, to := range domain.Statuses {
			for _, role := range domain.Roles {
				key := edgeKey(from, to, role)
				t.Run(key, func(t *testing.T) {
					got := workflow.CanTransition(from, to, role)
					assert.Equal(t, legalEdges[key], got)
				})
			}
		}
	}
}

func TestCanTransition_NoSelfLoops(t *testing.T) {
	for _, s := range domain.Statuses {
		for _, role := range domain.Roles {
			assert.False(t, workflow.CanTransition(s, s, role),
				"self-transition %s must be rejected for %s", s, role)
		}
	}
}

func TestCanTransition_PublishedIsTerminal(t *testing.T) {
	for _, to := range domain.Statuses {
		for _, role := range domain.Roles {
			assert.False(t, workflow.CanTransition(domain.StatusPublished, to, role),
				"PUBLISHED must have no outgoing edge to %s for %s", to, role)
		}
	}
}

func TestCanTransition_UnknownInputs(t *testing.T) {
	// Total function: unknown values yield false, never a panic.
	assert.False(t, workflow.CanTransition("ARCHIVED", domain.StatusDraft, domain.RoleAuthor))
	assert.False(t, workflow.CanTransition(domain.StatusDraft, "ARCHIVED", domain.RoleAuthor))
	assert.False(t, workflow.CanTransition(domain.StatusDraft, domain.StatusInReview, "ADMIN"))
}

func TestAllowedTargets(t *testing.T) {
	assert.Equal(t, []domain.Status{domain.StatusInReview},
		workflow.AllowedTargets(domain.StatusDraft, domain.RoleAuthor))
	assert.Equal(t, []domain.Status{domain.StatusPublished, domain.StatusRejected},
		workflow.AllowedTargets(domain.StatusInReview, domain.RoleEditor))
	assert.Empty(t, workflow.AllowedTargets(domain.StatusPublished, domain.RoleEditor))
	assert.Empty(t, workflow.AllowedTargets(domain.StatusDraft, domain.RoleEditor))
}
