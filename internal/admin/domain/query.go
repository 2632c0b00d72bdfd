package domain

import "strings"

// DefaultPageLimit bounds unpaged list requests.
const DefaultPageLimit = 1000

// Paging is the limit/skip window applied to list operations.
type Paging struct {
	Limit int
	Skip  int
}

// DefaultPaging returns the window used when the client sends none.
func DefaultPaging() Paging { return Paging{Limit: DefaultPageLimit} }

// Normalize clamps nonsense values back to the defaults.
func (p Paging) Normalize() Paging {
	if p.Limit <= 0 || p.Limit > DefaultPageLimit {
		p.Limit = DefaultPageLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	return p
}

// Filter matches a field against one or more acceptable values.
type Filter struct {
	Field  string
	Values []string
}

// ParseFilters decodes the wire filter format: clauses joined by '|', each
// clause "field:value" with comma-separated alternatives, e.g.
// "type:DataType|name:a,b". A malformed clause invalidates the whole
// expression and an empty filter set is returned.
func ParseFilters(raw string) []Filter {
	if raw == "" {
		return nil
	}

	var filters []Filter
	for clause := range strings.SplitSeq(raw, "|") {
		parts := strings.Split(clause, ":")
		if len(parts) != 2 || parts[0] == "" {
			return nil
		}

		var values []string
		for _, v := range strings.Split(parts[1], ",") {
			if v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return nil
		}

		filters = append(filters, Filter{Field: parts[0], Values: values})
	}
	return filters
}
