package domain

import "sort"

// Ranked orders scores ascending by attempts, then by name, and numbers them
// from 1.
func (s Scores) Ranked() []Entry {
	out := make([]Entry, 0, len(s))
	for name, attempts := range s {
		out = append(out, Entry{Name: name, Attempts: attempts})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Attempts != out[j].Attempts {
			return out[i].Attempts < out[j].Attempts
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Top returns at most LeaderboardSize ranked entries. Files edited by hand
// may hold more than the cap; only the best are reported.
func (s Scores) Top() []Entry {
	ranked := s.Ranked()
	if len(ranked) > LeaderboardSize {
		ranked = ranked[:LeaderboardSize]
	}
	return ranked
}

// Record applies a result: the name is stored when new or when attempts
// beats the stored best. Only the best LeaderboardSize entries are kept.
func (s Scores) Record(name string, attempts int) Scores {
	next := make(Scores, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	if best, ok := next[name]; !ok || attempts < best {
		next[name] = attempts
	}
	ranked := next.Ranked()
	if len(ranked) <= LeaderboardSize {
		return next
	}
	kept := make(Scores, LeaderboardSize)
	for _, e := range ranked[:LeaderboardSize] {
		kept[e.Name] = e.Attempts
	}
	return kept
}
