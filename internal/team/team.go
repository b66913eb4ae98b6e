// Package team arranges society office bearers into the org-chart tiers
// shown on the public team page.
package team

import (
	"sort"
	"strings"

	"society/internal/domain"
)

// Tier is a level of the org chart, 1 being the top.
type Tier int

const (
	TierUnknown Tier = iota
	TierPatron
	TierExecutive
	TierCoordinator
	TierCommittee
)

// Tiers lists the rendered tiers from top to base.
var Tiers = []Tier{TierPatron, TierExecutive, TierCoordinator, TierCommittee}

func (t Tier) String() string {
	switch t {
	case TierPatron:
		return "patron"
	case TierExecutive:
		return "executive"
	case TierCoordinator:
		return "coordinator"
	case TierCommittee:
		return "committee"
	}
	return "unknown"
}

type position struct {
	title string
	tier  Tier
}

var positions = []position{
	{"Senior Treasurer", TierPatron},
	{"President", TierExecutive},
	{"Vice President", TierExecutive},
	{"Secretary", TierExecutive},
	{"Vice Secretary", TierExecutive},
	{"Treasurer", TierExecutive},
	{"IT Coordinator", TierCoordinator},
	{"Editor", TierCoordinator},
	{"Organizer", TierCoordinator},
	{"Committee Member", TierCommittee},
}

var tierByPosition = func() map[string]Tier {
	m := make(map[string]Tier, len(positions))
	for _, p := range positions {
		m[normalize(p.title)] = p.tier
	}
	return m
}()

func normalize(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

// TierOf maps a position title to its tier, ignoring case and extra spaces.
func TierOf(title string) Tier {
	return tierByPosition[normalize(title)]
}

// CanonicalPosition returns the canonical spelling of title and whether it is known.
func CanonicalPosition(title string) (string, bool) {
	n := normalize(title)
	for _, p := range positions {
		if normalize(p.title) == n {
			return p.title, true
		}
	}
	return "", false
}

// Positions returns every known position title ordered by tier.
func Positions() []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.title
	}
	return out
}

// Hierarchy is the grouped org chart. Members whose position is not in the
// known set land in Unassigned and never in a numbered tier.
type Hierarchy struct {
	Levels     map[Tier][]domain.TeamMember
	Unassigned []domain.TeamMember
}

// Level returns the members of tier t in display order.
func (h Hierarchy) Level(t Tier) []domain.TeamMember {
	return h.Levels[t]
}

// Len reports how many members were grouped, including unassigned ones.
func (h Hierarchy) Len() int {
	n := len(h.Unassigned)
	for _, ms := range h.Levels {
		n += len(ms)
	}
	return n
}

// Group partitions members by tier. Within a tier members are ordered by
// DisplayOrder; ties keep their input order.
func Group(members []domain.TeamMember) Hierarchy {
	h := Hierarchy{Levels: make(map[Tier][]domain.TeamMember, len(Tiers))}
	for _, m := range members {
		tier := TierOf(m.Position)
		if tier == TierUnknown {
			h.Unassigned = append(h.Unassigned, m)
			continue
		}
		h.Levels[tier] = append(h.Levels[tier], m)
	}
	for tier, ms := range h.Levels {
		sort.SliceStable(ms, func(i, j int) bool { return ms[i].DisplayOrder < ms[j].DisplayOrder })
		h.Levels[tier] = ms
	}
	sort.SliceStable(h.Unassigned, func(i, j int) bool {
		return h.Unassigned[i].DisplayOrder < h.Unassigned[j].DisplayOrder
	})
	return h
}
