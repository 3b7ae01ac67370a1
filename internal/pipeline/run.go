package pipeline

import (
	"context"
	"log/slog"

	"spendlive/internal/core"
	"spendlive/internal/refresh"
	"spendlive/internal/source"
)

// NewCache wires a source into a refresh cache: the source doubles as the
// change detector, and the loader fetches then normalizes in one step.
func NewCache(src source.Source, defaultCurrency string) *refresh.Cache {
	return refresh.NewCache(src, func(ctx context.Context) (core.Dataset, error) {
		rows, err := src.FetchAll(ctx)
		if err != nil {
			return core.Dataset{}, err
		}
		return Normalize(rows, defaultCurrency), nil
	})
}

// Request is the user's partial filter input for one interaction. Nil fields
// mean "use the default derived from the loaded dataset".
type Request struct {
	Categories []string
	From       *core.Date
	To         *core.Date
}

// Result is everything one dashboard interaction renders. LoadErr carries a
// data-access failure; the rest of the result is then the degraded empty
// state rather than garbage.
type Result struct {
	Dataset   core.Dataset
	Selection Selection
	View      View
	Summary   []core.CategoryTotal
	Series    []core.DailyTotal
	LoadErr   error
}

// Run executes one full pass: cached-or-fresh load, filter, aggregate. Every
// user interaction re-runs this whole function; the refresh cache is the only
// state that survives between calls.
func Run(ctx context.Context, cache *refresh.Cache, req Request) Result {
	ds, err := cache.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "dataset load failed", "error", err)
		ds = core.Dataset{}
	}

	sel := DefaultSelection(ds)
	if len(req.Categories) > 0 {
		sel.Categories = req.Categories
	}
	if req.From != nil {
		sel.From = *req.From
	}
	if req.To != nil {
		sel.To = *req.To
	}

	view := Filter(ds, sel)
	return Result{
		Dataset:   ds,
		Selection: sel,
		View:      view,
		Summary:   SummarizeByCategory(view),
		Series:    DailySeries(view),
		LoadErr:   err,
	}
}
