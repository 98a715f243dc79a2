// internal/core/domain/filter_test.go
package domain_test

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

func TestFilterSet_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.FilterSet
	}{
		{
			name:    "empty",
			filters: domain.FilterSet{},
		},
		{
			name:    "free_text_only",
			filters: domain.FilterSet{FreeText: "perceuse"},
		},
		{
			name:    "accented_text_and_canton",
			filters: domain.FilterSet{FreeText: "vélo", Canton: "Vaud"},
		},
		{
			name:    "text_with_spaces",
			filters: domain.FilterSet{FreeText: "tente de camping", Canton: "Genève"},
		},
		{
			name: "all_fields",
			filters: domain.FilterSet{
				FreeText:       "vélo électrique",
				Canton:         "Zürich",
				Category:       "Sport",
				MaxPricePerDay: decimal.RequireFromString("12.50"),
			},
		},
		{
			name: "price_only",
			filters: domain.FilterSet{
				MaxPricePerDay: decimal.NewFromInt(30),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.filters.Encode()

			values, err := url.ParseQuery(encoded)
			require.NoError(t, err)

			decoded := domain.ParseFilterSet(values)
			assert.True(t, decoded.Equal(tt.filters),
				"round trip changed the filter set: %q -> %+v", encoded, decoded)
		})
	}
}

func TestParseFilterSet(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.FilterSet
	}{
		{
			name:  "recognized_parameters",
			query: "q=v%C3%A9lo&canton=Vaud&categorie=Sport&prix_max=20",
			want: domain.FilterSet{
				FreeText:       "vélo",
				Canton:         "Vaud",
				Category:       "Sport",
				MaxPricePerDay: decimal.NewFromInt(20),
			},
		},
		{
			name:  "unrecognized_parameters_ignored",
			query: "q=tente&page=3&tri=prix&utm_source=mail",
			want:  domain.FilterSet{FreeText: "tente"},
		},
		{
			name:  "absent_parameters_map_to_defaults",
			query: "",
			want:  domain.FilterSet{},
		},
		{
			name:  "malformed_price_treated_as_absent",
			query: "q=scie&prix_max=abc",
			want:  domain.FilterSet{FreeText: "scie"},
		},
		{
			name:  "non_positive_price_treated_as_absent",
			query: "prix_max=-5",
			want:  domain.FilterSet{},
		},
		{
			name:  "zero_price_treated_as_absent",
			query: "prix_max=0",
			want:  domain.FilterSet{},
		},
		{
			name:  "whitespace_trimmed",
			query: "q=%20raclette%20&canton=%20Valais%20",
			want:  domain.FilterSet{FreeText: "raclette", Canton: "Valais"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got := domain.ParseFilterSet(values)
			assert.True(t, got.Equal(tt.want), "got %+v, want %+v", got, tt.want)
		})
	}
}

func TestFilterSet_QueryValues_OmitsEmptyFields(t *testing.T) {
	filters := domain.FilterSet{FreeText: "vélo"}

	values := filters.QueryValues()

	assert.Equal(t, "vélo", values.Get(domain.ParamQuery))
	_, hasCanton := values[domain.ParamCanton]
	_, hasCategory := values[domain.ParamCategory]
	_, hasPrice := values[domain.ParamMaxPrice]
	assert.False(t, hasCanton, "empty canton must not be sent")
	assert.False(t, hasCategory, "empty category must not be sent")
	assert.False(t, hasPrice, "absent price must not be sent")
}

func TestFilterSet_SearchPath(t *testing.T) {
	assert.Equal(t, "/search", domain.FilterSet{}.SearchPath())
	assert.Equal(t, "/search?canton=Vaud&q=skis",
		domain.FilterSet{FreeText: "skis", Canton: "Vaud"}.SearchPath())
}

func TestFilterSet_Primary(t *testing.T) {
	full := domain.FilterSet{
		FreeText:       "vélo",
		Canton:         "Vaud",
		Category:       "Sport",
		MaxPricePerDay: decimal.NewFromInt(25),
	}

	primary := full.Primary()

	assert.Equal(t, "vélo", primary.FreeText)
	assert.Equal(t, "Vaud", primary.Canton)
	assert.Empty(t, primary.Category)
	assert.False(t, primary.MaxPricePerDay.IsPositive())
}

func TestFilterSet_IsZero(t *testing.T) {
	assert.True(t, domain.FilterSet{}.IsZero())
	assert.False(t, domain.FilterSet{Canton: "Jura"}.IsZero())
	assert.False(t, domain.FilterSet{MaxPricePerDay: decimal.NewFromInt(1)}.IsZero())
}
