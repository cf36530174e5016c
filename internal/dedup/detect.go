// Package dedup finds likely-duplicate contacts and plans their merges.
// Everything here is advisory: detection surfaces groups with scores and
// reasons for a human to review, and merge plans are computed but never
// executed by this package.
package dedup

import (
	"fmt"
	"sort"

	"remember/internal/contact"
)

// NameThreshold is the minimum fuzzy name similarity that groups two
// contacts absent an exact email or phone match.
const NameThreshold = 0.8

// Group is one cluster of likely-duplicate contacts awaiting review.
// Keeper is a deterministic suggestion, not a decision; the user can merge
// in either direction.
type Group struct {
	Keeper     contact.Contact   `json:"keeper"`
	Duplicates []contact.Contact `json:"duplicates"`
	Score      float64           `json:"score"`
	Reasons    []string          `json:"reasons"`
}

// FindDuplicates scans a contact snapshot for likely duplicates. Matching is
// transitive: if A matches B and B matches C, all three land in one group.
// Signals, strongest first:
//   - identical normalized email (score 1.0)
//   - identical normalized phone (score 1.0)
//   - name similarity >= NameThreshold (score = similarity)
func FindDuplicates(contacts []contact.Contact) []Group {
	n := len(contacts)
	if n < 2 {
		return nil
	}

	emails := make([]string, n)
	phones := make([]string, n)
	names := make([]string, n)
	for i, c := range contacts {
		emails[i] = NormalizeEmail(c.Email)
		phones[i] = NormalizePhone(c.Phone)
		names[i] = NormalizeName(c.Name)
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(i, j int) {
		parent[find(i)] = find(j)
	}

	type match struct {
		i, j   int
		score  float64
		reason string
	}
	var matches []match

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			exact := false
			if emails[i] != "" && emails[i] == emails[j] {
				matches = append(matches, match{i, j, 1.0, "email"})
				exact = true
			}
			if phones[i] != "" && phones[i] == phones[j] {
				matches = append(matches, match{i, j, 1.0, "phone"})
				exact = true
			}
			if exact {
				union(i, j)
				continue
			}
			if sim := nameSimilarity(names[i], names[j]); sim >= NameThreshold {
				matches = append(matches, match{i, j, sim, fmt.Sprintf("name:%.0f%%", sim*100)})
				union(i, j)
			}
		}
	}

	if len(matches) == 0 {
		return nil
	}

	members := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := find(i)
		members[root] = append(members[root], i)
	}

	scores := make(map[int]float64)
	reasons := make(map[int]map[string]bool)
	for _, m := range matches {
		root := find(m.i)
		if m.score > scores[root] {
			scores[root] = m.score
		}
		if reasons[root] == nil {
			reasons[root] = make(map[string]bool)
		}
		reasons[root][m.reason] = true
	}

	var groups []Group
	for root, idxs := range members {
		if len(idxs) < 2 {
			continue
		}

		keeper := idxs[0]
		for _, i := range idxs[1:] {
			if keeperLess(contacts[i], contacts[keeper]) {
				keeper = i
			}
		}

		g := Group{Keeper: contacts[keeper], Score: scores[root]}
		for _, i := range idxs {
			if i != keeper {
				g.Duplicates = append(g.Duplicates, contacts[i])
			}
		}
		for r := range reasons[root] {
			g.Reasons = append(g.Reasons, r)
		}
		sort.Strings(g.Reasons)
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Keeper.ID < groups[j].Keeper.ID
	})
	return groups
}

// keeperLess reports whether a is a better keeper suggestion than b: most
// populated fields first, then earliest creation, then smallest id.
func keeperLess(a, b contact.Contact) bool {
	fa, fb := fieldCount(a), fieldCount(b)
	if fa != fb {
		return fa > fb
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

func fieldCount(c contact.Contact) int {
	n := 0
	for _, s := range []string{c.Name, c.Email, c.Phone, c.Company, c.Notes, string(c.Importance)} {
		if s != "" {
			n++
		}
	}
	if c.TargetFrequencyDays > 0 {
		n++
	}
	if c.LastInteractionAt != nil {
		n++
	}
	return n
}
