package catalogview

import (
	"strings"

	"github.com/greenmart/pos/internal/models"
)

// SentinelCategory disables category filtering; it is the first pill the
// storefront shows.
const SentinelCategory = "Todos"

// Filter keeps the products matching both the category and the search query.
// The sentinel category matches everything; otherwise the match is exact and
// case-sensitive. The query is a case-insensitive substring match on the
// product name, with no diacritic folding.
func Filter(products []models.Product, category, query string) []models.Product {
	q := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, category) {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p models.Product, category string) bool {
	return category == SentinelCategory || category == "" || p.Category == category
}

// Categories derives the pill list for a product set: the sentinel followed
// by the distinct non-empty category names in first-seen order.
func Categories(products []models.Product) []string {
	out := []string{SentinelCategory}
	seen := make(map[string]bool)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
