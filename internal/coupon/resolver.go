// Package coupon resolves coupon codes against an immutable table.
//
// Unknown codes are not an error: they resolve to a zero discount and a
// sentinel Info record.
package coupon

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Info is the display metadata of a coupon.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UnknownInfo is returned by Info for codes that are not in the table.
var UnknownInfo = Info{
	Name:        "Unknown Coupon",
	Description: "Invalid coupon code",
	Category:    "Unknown",
}

// Resolver is safe for concurrent use; it is never mutated after construction.
type Resolver struct {
	byCode map[string]models.Coupon
}

// NewResolver builds a resolver from entries. Codes are upper-cased; duplicate
// codes and percentages outside [0,100] are rejected.
func NewResolver(entries []models.Coupon) (*Resolver, error) {
	byCode := make(map[string]models.Coupon, len(entries))
	for _, c := range entries {
		code := Normalize(c.Code)
		if code == "" {
			return nil, fmt.Errorf("coupon with empty code")
		}
		if c.Percent < 0 || c.Percent > 100 {
			return nil, fmt.Errorf("coupon %s: percent %d out of range", code, c.Percent)
		}
		if _, dup := byCode[code]; dup {
			return nil, fmt.Errorf("coupon %s: duplicate code", code)
		}
		c.Code = code
		byCode[code] = c
	}
	return &Resolver{byCode: byCode}, nil
}

var defaultResolver = mustResolver(builtin)

func mustResolver(entries []models.Coupon) *Resolver {
	r, err := NewResolver(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the resolver over the built-in coupon table.
func Default() *Resolver {
	return defaultResolver
}

// Normalize upper-cases code with full Unicode case mapping, so a ligature
// such as "ﬂ" becomes "FL". Whitespace is kept.
func Normalize(code string) string {
	// a Caser carries state and must not be shared between goroutines
	return cases.Upper(language.Und).String(code)
}

// Lookup is case-insensitive. Whitespace is not trimmed.
func (r *Resolver) Lookup(code string) (models.Coupon, bool) {
	c, ok := r.byCode[Normalize(code)]
	return c, ok
}

func (r *Resolver) IsValid(code string) bool {
	_, ok := r.Lookup(code)
	return ok
}

// Percent returns the discount percentage for code, or 0 if unknown.
func (r *Resolver) Percent(code string) int {
	c, _ := r.Lookup(code)
	return c.Percent
}

// DiscountAmount returns subtotal * Percent(code) / 100 without rounding.
func (r *Resolver) DiscountAmount(subtotal decimal.Decimal, code string) decimal.Decimal {
	if code == "" {
		return decimal.Zero
	}
	return subtotal.Mul(decimal.NewFromInt(int64(r.Percent(code)))).Div(hundred)
}

func (r *Resolver) Info(code string) Info {
	c, ok := r.Lookup(code)
	if !ok {
		return UnknownInfo
	}
	return Info{Name: c.Name, Description: c.Description, Category: c.Category}
}

// All returns every coupon ordered by category, then code.
func (r *Resolver) All() []models.Coupon {
	out := make([]models.Coupon, 0, len(r.byCode))
	for _, c := range r.byCode {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Featured returns the curated coupon listing. Entries missing from this
// resolver's table are skipped.
func (r *Resolver) Featured() []models.Coupon {
	return r.listed(featured)
}

// Popular returns the short suggestion list shown beside the coupon field.
func (r *Resolver) Popular() []models.Coupon {
	return r.listed(popular)
}

func (r *Resolver) listed(ls []listing) []models.Coupon {
	out := make([]models.Coupon, 0, len(ls))
	for _, l := range ls {
		c, ok := r.Lookup(l.code)
		if !ok {
			continue
		}
		c.Description = l.description
		out = append(out, c)
	}
	return out
}

func (r *Resolver) Len() int {
	return len(r.byCode)
}
