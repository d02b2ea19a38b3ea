package core

import (
	"sort"
	"strings"
)

// SortOption selects the ordering of a note list. Pinned notes always
// sort first; the option decides the order among notes of equal pin
// state. The category options float their category to the top before
// falling back to most-recently-updated.
type SortOption string

const (
	SortRecent SortOption = "recent"
	SortCode   SortOption = "code"
	SortText   SortOption = "text"
	SortJSON   SortOption = "json"
)

// SortNotes orders notes in place according to opt.
func SortNotes(notes []Note, opt SortOption) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		switch opt {
		case SortCode, SortText, SortJSON:
			cat := string(opt)
			if (a.Category == cat) != (b.Category == cat) {
				return a.Category == cat
			}
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
}

// Filter narrows a note list the way the list view does: a free-text
// query over all textual fields including category and tags, plus exact
// category and tag selections. This is wider than Store.SearchNotes,
// which matches title/description/content only.
type Filter struct {
	Query      string
	Categories []string
	Tags       []string
}

// FilterNotes returns the notes matching every populated criterion.
func FilterNotes(notes []Note, f Filter) []Note {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return filter(notes, func(n Note) bool {
		if q != "" && !matchesQuery(n, q) {
			return false
		}
		if len(f.Categories) > 0 && !contains(f.Categories, n.Category) {
			return false
		}
		if len(f.Tags) > 0 && !containsAny(n.Tags, f.Tags) {
			return false
		}
		return true
	})
}

func matchesQuery(n Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Description), q) ||
		strings.Contains(strings.ToLower(n.Content), q) ||
		strings.Contains(strings.ToLower(n.Category), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsAny(haystack, needles []string) bool {
	for _, n := range needles {
		if contains(haystack, n) {
			return true
		}
	}
	return false
}

// Categories returns the unique, sorted categories present in notes.
func Categories(notes []Note) []string {
	return uniqueSorted(notes, func(n Note) []string {
		if n.Category == "" {
			return nil
		}
		return []string{n.Category}
	})
}

// TagSet returns the unique, sorted tags present in notes.
func TagSet(notes []Note) []string {
	return uniqueSorted(notes, func(n Note) []string { return n.Tags })
}

func uniqueSorted(notes []Note, extract func(Note) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range notes {
		for _, v := range extract(n) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out
}
