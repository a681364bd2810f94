package search

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type BookLister interface {
	List(ctx context.Context) ([]models.Book, error)
}

type SuggestItem struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author,omitempty"`
	URL    string  `json:"url"`
	Score  float64 `json:"-"`
}

// Suggest handles GET /search/suggest?q=&limit=: case- and accent-
// insensitive title/author matching over the books collection. Prefix
// matches rank above substring matches.
func Suggest(sto BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := fold(strings.TrimSpace(r.URL.Query().Get("q")))
		if len([]rune(q)) < 2 {
			httpx.WriteJSON(w, http.StatusOK, map[string]any{
				"status": "success", "count": 0, "data": []any{},
			})
			return
		}

		limit := 10
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 20 {
				limit = n
			}
		}

		all, err := sto.List(r.Context())
		if err != nil {
			apperr.WriteStore(w, r, err)
			return
		}

		var items []SuggestItem
		for _, b := range all {
			score := match(q, fold(b.Title))
			if s := match(q, fold(b.Author)); s > score {
				score = s
			}
			if score == 0 {
				continue
			}
			items = append(items, SuggestItem{
				ID:     b.ID.Hex(),
				Title:  b.Title,
				Author: b.Author,
				URL:    "/books/" + b.ID.Hex(),
				Score:  score,
			})
		}

		sort.Slice(items, func(i, j int) bool {
			if items[i].Score == items[j].Score {
				return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
			}
			return items[i].Score > items[j].Score
		})
		if len(items) > limit {
			items = items[:limit]
		}
		if items == nil {
			items = []SuggestItem{}
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "success", "count": len(items), "data": items,
		})
	}
}

func match(q, target string) float64 {
	switch {
	case target == "":
		return 0
	case strings.HasPrefix(target, q):
		return 1.0
	case strings.Contains(target, q):
		return 0.5
	}
	return 0
}

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	folded, _, err := transform.String(foldChain, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
