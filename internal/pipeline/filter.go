package pipeline

import (
	"sort"

	"spendlive/internal/core"
)

// Selection is the user's current filter state: a category set and an
// inclusive date range.
type Selection struct {
	Categories []string
	From       core.Date
	To         core.Date
}

// View is the subset of the dataset matching a selection.
type View struct {
	Transactions []core.Transaction
	Selection    Selection
}

// DefaultSelection is the filter state before the user touches anything:
// every category present, and the full [min, max] span of parseable dates.
// With no parseable dates at all, both ends fall back to today.
func DefaultSelection(ds core.Dataset) Selection {
	sel := Selection{Categories: ds.Categories()}
	min, max, ok := ds.DateBounds()
	if !ok {
		today := core.Today()
		min, max = today, today
	}
	sel.From, sel.To = min, max
	return sel
}

// Filter narrows the dataset to records whose category is in the selection's
// set and whose date is parseable and inside the inclusive range. Null-date
// rows never match a range filter; they only appear in the raw listing.
func Filter(ds core.Dataset, sel Selection) View {
	wanted := make(map[string]struct{}, len(sel.Categories))
	for _, c := range sel.Categories {
		wanted[c] = struct{}{}
	}

	view := View{Selection: sel}
	for _, t := range ds.Transactions {
		if _, ok := wanted[t.Category]; !ok {
			continue
		}
		if t.Date == nil {
			continue
		}
		if t.Date.Before(sel.From) || t.Date.After(sel.To) {
			continue
		}
		view.Transactions = append(view.Transactions, t)
	}
	return view
}

// Empty reports whether the view holds no records.
func (v View) Empty() bool {
	return len(v.Transactions) == 0
}

// ByDateDesc returns the view's records sorted most recent first, the order
// the transactions table displays. Ties keep the higher id first so the
// ordering is stable across refreshes.
func (v View) ByDateDesc() []core.Transaction {
	out := make([]core.Transaction, len(v.Transactions))
	copy(out, v.Transactions)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Date, out[j].Date
		switch {
		case di == nil && dj == nil:
			return out[i].ID > out[j].ID
		case di == nil:
			return false
		case dj == nil:
			return true
		}
		if !di.Equal(*dj) {
			return di.After(*dj)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
