// Package catalog holds the read-only product reference data for the
// bakery storefront. The catalog is closed-world: it is seeded once at
// construction and products are never mutated afterwards, so lookups
// that miss are a normal empty result, not an error.
package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryCookies   Category = "COOKIES"
	CategoryCake      Category = "CAKE"
	CategoryBretzel   Category = "BRETZEL"
	CategoryPastries  Category = "PASTRIES"
	CategoryCroissant Category = "CROISSANT"
	CategoryBagel     Category = "BAGEL"
	CategoryBread     Category = "BREAD"

	// CategoryAll is a query pseudo-category, never stored on a product.
	CategoryAll Category = "ALL"
)

type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	ImageURL        string           `json:"imageUrl"`
	Category        Category         `json:"category"`
	BestSeller      bool             `json:"bestSeller,omitempty"`
	GlutenFree      bool             `json:"glutenFree,omitempty"`
	Vegan           bool             `json:"vegan,omitempty"`
	Featured        bool             `json:"featured,omitempty"`
	Ingredients     []string         `json:"ingredients,omitempty"`
	NutritionalInfo *NutritionalInfo `json:"nutritionalInfo,omitempty"`
}

type Store struct {
	mu sync.RWMutex
	m  map[string]Product
}

// NewStore builds a store seeded with the full bakery assortment.
func NewStore() *Store {
	s := &Store{m: make(map[string]Product, len(seedProducts))}
	for _, p := range seedProducts {
		s.m[p.ID] = p
	}
	return s
}

// List returns every product sorted by id.
func (s *Store) List(ctx context.Context) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(Product) bool { return true })
}

// Get looks up a single product. A miss is a valid result.
func (s *Store) Get(ctx context.Context, id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.m[id]
	return p, ok
}

// ListByCategory returns products in the given category, sorted by id.
// CategoryAll returns the whole catalog.
func (s *Store) ListByCategory(ctx context.Context, cat Category) []Product {
	if cat == CategoryAll {
		return s.List(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(p Product) bool { return p.Category == cat })
}

// ListFeatured returns products flagged as best sellers or featured.
func (s *Store) ListFeatured(ctx context.Context) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(func(p Product) bool { return p.BestSeller || p.Featured })
}

// Put inserts or replaces a product. Runtime traffic never calls
// this; it exists for admin tooling and seeding.
func (s *Store) Put(ctx context.Context, p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[p.ID] = p
}

// Remove deletes a product. Only admin tooling uses this; carts that
// still reference the product degrade per the cart read contract.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

func (s *Store) sortedLocked(keep func(Product) bool) []Product {
	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
