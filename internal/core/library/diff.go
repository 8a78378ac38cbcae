package library

import (
	"path/filepath"
	"sort"
)

// Candidate is one discovered executable that matched the external catalog.
type Candidate struct {
	Name       string
	Executable string
	Category   string
	GridID     int64
}

// DiscoverySet maps candidate game name to its discovered details for one
// reconciliation pass. Later lookup folders win on name collisions, matching
// the order folders are registered.
type DiscoverySet map[string]Candidate

// StoredGame is the snapshot view of a persisted game used for diffing.
type StoredGame struct {
	ID         string
	Name       string
	Executable string
}

// Update pairs a stored game with the executable path discovery now reports.
type Update struct {
	GameID     string
	Name       string
	Executable string
}

// Plan is the atomic-intent result of diffing one discovery set against one
// snapshot of the persisted catalog. All three slices are computed from the
// same pre-reconciliation snapshot.
type Plan struct {
	Inserts  []Candidate
	Updates  []Update
	Removals []StoredGame
}

// Empty reports whether applying the plan would mutate nothing.
func (p Plan) Empty() bool {
	return len(p.Inserts) == 0 && len(p.Updates) == 0 && len(p.Removals) == 0
}

// BuildPlan diffs the discovery set against the stored snapshot:
//
//   - stored names absent from discovery are removed
//   - stored names present in discovery with a different executable are
//     updated (an unchanged path produces no update, so a second pass over
//     an unchanged filesystem is a no-op)
//   - discovered names absent from storage are inserted
//
// Insertion order follows the stored snapshot for removals/updates and is
// name-sorted for inserts to keep passes deterministic.
func BuildPlan(discovered DiscoverySet, stored []StoredGame) Plan {
	var plan Plan

	storedNames := make(map[string]bool, len(stored))
	for _, game := range stored {
		storedNames[game.Name] = true

		candidate, ok := discovered[game.Name]
		if !ok {
			plan.Removals = append(plan.Removals, game)
			continue
		}
		if candidate.Executable != game.Executable {
			plan.Updates = append(plan.Updates, Update{
				GameID:     game.ID,
				Name:       game.Name,
				Executable: candidate.Executable,
			})
		}
	}

	for _, name := range sortedNames(discovered) {
		if !storedNames[name] {
			plan.Inserts = append(plan.Inserts, discovered[name])
		}
	}

	return plan
}

// ParentDirectory derives the parent-directory attribute from an executable
// path. Games recompute this whenever the executable changes.
func ParentDirectory(executable string) string {
	return filepath.Dir(executable)
}

func sortedNames(set DiscoverySet) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
