package http

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"spendlive/internal/core"
	"spendlive/internal/pipeline"
)

// parseRequest extracts the partial filter state from the query string.
// Absent parameters stay nil so the pipeline applies dataset-derived
// defaults; malformed dates are ignored the same way.
func parseRequest(r *http.Request) pipeline.Request {
	q := r.URL.Query()

	var req pipeline.Request
	for _, c := range q["category"] {
		if c = strings.TrimSpace(c); c != "" {
			req.Categories = append(req.Categories, c)
		}
	}
	req.From = parseDateParam(q.Get("from"))
	req.To = parseDateParam(q.Get("to"))
	return req
}

func parseDateParam(s string) *core.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return core.ParseDate(s)
}

var templateFuncs = template.FuncMap{
	"amount": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"contains": func(set []string, v string) bool {
		for _, s := range set {
			if s == v {
				return true
			}
		}
		return false
	},
	"seriesJSON": func(series []core.DailyTotal) template.JS {
		type point struct {
			Date   string  `json:"date"`
			Amount float64 `json:"amount"`
		}
		points := make([]point, len(series))
		for i, dt := range series {
			points[i] = point{Date: dt.Day.String(), Amount: dt.Total.InexactFloat64()}
		}
		b, err := json.Marshal(points)
		if err != nil {
			return template.JS("[]")
		}
		return template.JS(b)
	},
}
