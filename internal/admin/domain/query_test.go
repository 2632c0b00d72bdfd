package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Filter
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "single clause",
			raw:  "type:DataType",
			want: []Filter{{Field: "type", Values: []string{"DataType"}}},
		},
		{
			name: "multiple values",
			raw:  "name:alpha,beta",
			want: []Filter{{Field: "name", Values: []string{"alpha", "beta"}}},
		},
		{
			name: "multiple clauses",
			raw:  "type:DataType|name:alpha,beta",
			want: []Filter{
				{Field: "type", Values: []string{"DataType"}},
				{Field: "name", Values: []string{"alpha", "beta"}},
			},
		},
		{
			name: "missing separator drops everything",
			raw:  "type:DataType|garbage",
			want: nil,
		},
		{
			name: "extra colon drops everything",
			raw:  "type:a:b",
			want: nil,
		},
		{
			name: "empty field drops everything",
			raw:  ":DataType",
			want: nil,
		},
		{
			name: "empty value drops everything",
			raw:  "type:",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseFilters(tc.raw))
		})
	}
}

func TestPagingNormalize(t *testing.T) {
	require.Equal(t, Paging{Limit: DefaultPageLimit}, Paging{}.Normalize())
	require.Equal(t, Paging{Limit: 10, Skip: 5}, Paging{Limit: 10, Skip: 5}.Normalize())
	require.Equal(t, Paging{Limit: DefaultPageLimit}, Paging{Limit: 99999, Skip: -1}.Normalize())
}

func TestNomenclatureTypeIsValid(t *testing.T) {
	for _, typ := range NomenclatureTypes() {
		require.True(t, typ.IsValid())
	}
	require.False(t, NomenclatureType("Bogus").IsValid())
}

func TestScopeCatalog(t *testing.T) {
	catalog := ScopeCatalog()
	require.Len(t, catalog, 9)
	require.True(t, KnownScope(ScopeUsersRead))
	require.True(t, KnownScope(ScopePubCommit))
	require.False(t, KnownScope("users:admin"))
}
