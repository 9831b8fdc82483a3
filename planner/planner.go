// Package planner fixes the shape of the external collaborator spec.md §6
// calls "Planner": something that consumes a fully-resolved Query and
// returns a plan the caller can eventually execute. The planner/optimizer
// itself is out of scope for this repo (Non-goals, spec.md §1); this
// package only names the interface the executor's REFRESH VIEW handler
// depends on, the same way catalog.Catalog names a dependency this repo
// consumes but does not implement. Grounded on the teacher's sql.Node —
// a plan is any Node the planner can hand back and the executor cannot
// yet do anything with but hold.
package planner

import (
	"context"

	"github.com/mapd-project/queryfront/resolved"
)

// Plan is an opaque planned form of a resolved Query. This repo never
// inspects one — REFRESH VIEW obtains a Plan and, per spec.md §9
// "Deferred behavior", stops there.
type Plan interface {
	// Query returns the resolved Query this plan was built from.
	Query() *resolved.Query
}

// Planner turns a resolved Query into a Plan.
type Planner interface {
	Plan(ctx context.Context, q *resolved.Query) (Plan, error)
}
