// internal/core/domain/filter.go
package domain

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Recognized query parameter names. The same names appear in the navigable
// search address and in requests to the backend's /api/items endpoint.
const (
	ParamQuery    = "q"
	ParamCanton   = "canton"
	ParamCategory = "categorie"
	ParamMaxPrice = "prix_max"
)

// FilterSet is the tuple of search constraints that fully determines a
// listing request. The zero value means "no constraint" for every field;
// absent fields are never sent as empty parameters.
type FilterSet struct {
	FreeText string
	Canton   string
	Category string

	// MaxPricePerDay caps the daily price. Zero means no ceiling.
	MaxPricePerDay decimal.Decimal
}

// ParseFilterSet derives a FilterSet from a query string. Unrecognized or
// absent parameters map to the zero value; a malformed or non-positive
// prix_max is treated as absent rather than an error.
func ParseFilterSet(values url.Values) FilterSet {
	f := FilterSet{
		FreeText: strings.TrimSpace(values.Get(ParamQuery)),
		Canton:   strings.TrimSpace(values.Get(ParamCanton)),
		Category: strings.TrimSpace(values.Get(ParamCategory)),
	}

	if raw := strings.TrimSpace(values.Get(ParamMaxPrice)); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil && price.IsPositive() {
			f.MaxPricePerDay = price
		}
	}

	return f
}

// QueryValues produces the outbound parameters: exactly the populated
// fields under their fixed names.
func (f FilterSet) QueryValues() url.Values {
	v := url.Values{}
	if f.FreeText != "" {
		v.Set(ParamQuery, f.FreeText)
	}
	if f.Canton != "" {
		v.Set(ParamCanton, f.Canton)
	}
	if f.Category != "" {
		v.Set(ParamCategory, f.Category)
	}
	if f.MaxPricePerDay.IsPositive() {
		v.Set(ParamMaxPrice, f.MaxPricePerDay.String())
	}
	return v
}

// Encode renders the filter set as a query string with stable key order and
// percent-encoded values. ParseFilterSet(Encode(f)) yields a filter set
// equivalent to f.
func (f FilterSet) Encode() string {
	return f.QueryValues().Encode()
}

// SearchPath returns the navigable address for this filter set.
func (f FilterSet) SearchPath() string {
	q := f.Encode()
	if q == "" {
		return "/search"
	}
	return "/search?" + q
}

// Primary returns the subset the main search form submits: free text and
// canton only. The advanced panel contributes the remaining fields.
func (f FilterSet) Primary() FilterSet {
	return FilterSet{FreeText: f.FreeText, Canton: f.Canton}
}

// IsZero reports whether no constraint is set.
func (f FilterSet) IsZero() bool {
	return f.FreeText == "" && f.Canton == "" && f.Category == "" && !f.MaxPricePerDay.IsPositive()
}

// Equal compares two filter sets field by field. Prices compare by value,
// not representation, so "12.50" and "12.5" are the same ceiling.
func (f FilterSet) Equal(other FilterSet) bool {
	return f.FreeText == other.FreeText &&
		f.Canton == other.Canton &&
		f.Category == other.Category &&
		f.MaxPricePerDay.Equal(other.MaxPricePerDay)
}
