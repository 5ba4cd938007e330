package standings

import (
	"fmt"
	"math"
	"sort"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/leagues"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/standings"
)

const (
	// DefaultGroup names rows without a league_round.
	DefaultGroup = "Grupa Implicită"
	// TopCount is the size of the leaders preview.
	TopCount = 6

	ligaIIIChunk = 10
)

func sortKey(s standings.Standing) int {
	if pos, ok := s.Position(); ok {
		return pos
	}
	return math.MaxInt
}

// SortByPosition returns a copy ordered by overall position. Ties keep input order; unparseable positions go last.
func SortByPosition(list []standings.Standing) []standings.Standing {
	out := append([]standings.Standing(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

// Group splits a table into display groups.
//
// Liga III arrives as consecutive blocks of ten; "Grupa N" collects the N-th placed team of every block.
// Other leagues group by league_round in order of first appearance.
func Group(leagueID string, list []standings.Standing) []standings.Group {
	if leagueID == leagues.LigaIII {
		return groupByRelativePosition(list)
	}
	return groupByRound(list)
}

func groupByRelativePosition(list []standings.Standing) []standings.Group {
	sorted := SortByPosition(list)
	groups := make([]standings.Group, 0, ligaIIIChunk)
	for rel := 0; rel < ligaIIIChunk; rel++ {
		var rows []standings.Row
		for start := 0; start+rel < len(sorted); start += ligaIIIChunk {
			rows = append(rows, standings.Row{Standing: sorted[start+rel]})
		}
		if len(rows) == 0 {
			continue
		}
		groups = append(groups, standings.Group{Name: fmt.Sprintf("Grupa %d", rel+1), Rows: rows})
	}
	return groups
}

func groupByRound(list []standings.Standing) []standings.Group {
	var groups []standings.Group
	index := map[string]int{}
	for _, s := range list {
		name := s.LeagueRound
		if name == "" {
			name = DefaultGroup
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, standings.Group{Name: name})
		}
		groups[i].Rows = append(groups[i].Rows, standings.Row{Standing: s})
	}
	return groups
}

// Top returns the first team seen at each position 1..n, ordered by position.
func Top(list []standings.Standing, n int) []standings.Standing {
	seen := make(map[int]bool, n)
	out := make([]standings.Standing, 0, n)
	for _, s := range SortByPosition(list) {
		pos, ok := s.Position()
		if !ok || pos < 1 || pos > n || seen[pos] {
			continue
		}
		seen[pos] = true
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out
}

// BandFor classifies a position in a table of total rows.
// For Liga III, position is the place within the team's block of ten.
func BandFor(leagueID string, position, total int) standings.Band {
	if position < 1 {
		return standings.BandNone
	}
	switch leagueID {
	case leagues.LigaI:
		if position <= 6 {
			return standings.BandChampionship
		}
		if total >= 10 {
			switch {
			case position > total-2:
				return standings.BandRelegation
			case position > total-4:
				return standings.BandRelegationPlayoff
			}
		}
	case leagues.LigaII:
		if position <= 6 {
			return standings.BandPromotion
		}
	case leagues.LigaIII:
		if position == 1 {
			return standings.BandPromotion
		}
	}
	return standings.BandNone
}

// Bands annotates every row of groups in place.
func Bands(leagueID string, groups []standings.Group, total int) {
	for gi := range groups {
		for ri := range groups[gi].Rows {
			row := &groups[gi].Rows[ri]
			pos, ok := row.Position()
			if leagueID == leagues.LigaIII {
				pos, ok = gi+1, true
			}
			if !ok {
				continue
			}
			row.Band = BandFor(leagueID, pos, total)
		}
	}
}
