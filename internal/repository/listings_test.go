package repository

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildListListingsQueryNoFilters(t *testing.T) {
	opts := ListListingsOptions{Sort: "createdAt", Order: "DESC", Page: 1, Limit: 10}

	query, params, err := buildListListingsQuery(opts)
	if err != nil {
		t.Fatalf("buildListListingsQuery returned unexpected error: %v", err)
	}

	if strings.Contains(query, "WHERE") {
		t.Errorf("query without filters should not contain WHERE, got %q", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC") {
		t.Errorf("query should order by created_at DESC, got %q", query)
	}
	if len(params) != 2 {
		t.Fatalf("expected 2 params (limit, offset), got %d", len(params))
	}
	if params[0] != 10 || params[1] != 0 {
		t.Errorf("params = %v, want [10 0]", params)
	}
}

func TestBuildListListingsQuerySearchMatchesBothColumns(t *testing.T) {
	opts := ListListingsOptions{Search: "developer", Sort: "createdAt", Order: "DESC", Page: 1, Limit: 10}

	query, params, err := buildListListingsQuery(opts)
	if err != nil {
		t.Fatalf("buildListListingsQuery returned unexpected error: %v", err)
	}

	if !strings.Contains(query, "(company_name ILIKE $1 OR job_position ILIKE $2)") {
		t.Errorf("search should match company_name or job_position, got %q", query)
	}
	if len(params) != 4 {
		t.Fatalf("expected 4 params, got %d", len(params))
	}
	if params[0] != "%developer%" || params[1] != "%developer%" {
		t.Errorf("search params = %v, want two %%developer%% patterns", params[:2])
	}
}

func TestBuildListListingsQueryConjunction(t *testing.T) {
	opts := ListListingsOptions{
		Search:   "engineer",
		Location: "Bangalore",
		JobType:  "Full-Time",
		Remote:   "Remote",
		Sort:     "monthlySalary",
		Order:    "ASC",
		Page:     3,
		Limit:    5,
	}

	query, params, err := buildListListingsQuery(opts)
	if err != nil {
		t.Fatalf("buildListListingsQuery returned unexpected error: %v", err)
	}

	for _, clause := range []string{
		"(company_name ILIKE $1 OR job_position ILIKE $2)",
		"location = $3",
		"job_type = $4",
		"remote = $5",
	} {
		if !strings.Contains(query, clause) {
			t.Errorf("query missing clause %q: %q", clause, query)
		}
	}
	if strings.Count(query, " AND ") != 3 {
		t.Errorf("all filters must be joined with AND, got %q", query)
	}
	if !strings.Contains(query, "ORDER BY monthly_salary ASC") {
		t.Errorf("query should order by monthly_salary ASC, got %q", query)
	}

	// offset = (page-1)*limit
	if len(params) != 7 {
		t.Fatalf("expected 7 params, got %d", len(params))
	}
	if params[5] != 5 || params[6] != 10 {
		t.Errorf("limit/offset = %v/%v, want 5/10", params[5], params[6])
	}
}

func TestBuildListListingsQueryRejectsUnknownSortField(t *testing.T) {
	opts := ListListingsOptions{Sort: "id; DROP TABLE job_listings", Order: "DESC", Page: 1, Limit: 10}

	_, _, err := buildListListingsQuery(opts)
	if !errors.Is(err, ErrInvalidSortField) {
		t.Errorf("buildListListingsQuery = %v, want ErrInvalidSortField", err)
	}
}

func TestBuildListListingsQueryRejectsUnknownOrder(t *testing.T) {
	opts := ListListingsOptions{Sort: "createdAt", Order: "SIDEWAYS", Page: 1, Limit: 10}

	_, _, err := buildListListingsQuery(opts)
	if !errors.Is(err, ErrInvalidSortOrder) {
		t.Errorf("buildListListingsQuery = %v, want ErrInvalidSortOrder", err)
	}
}

func TestBuildListListingsQueryLowercaseOrder(t *testing.T) {
	opts := ListListingsOptions{Sort: "createdAt", Order: "asc", Page: 1, Limit: 10}

	query, _, err := buildListListingsQuery(opts)
	if err != nil {
		t.Fatalf("buildListListingsQuery returned unexpected error: %v", err)
	}
	if !strings.Contains(query, "ORDER BY created_at ASC") {
		t.Errorf("lowercase order should be accepted, got %q", query)
	}
}

func TestListListingsOptionsNormalize(t *testing.T) {
	cases := []struct {
		name      string
		opts      ListListingsOptions
		wantSort  string
		wantOrder string
		wantPage  int
		wantLimit int
	}{
		{"empty", ListListingsOptions{}, "createdAt", "DESC", 1, 10},
		{"negative page", ListListingsOptions{Page: -3, Limit: 20}, "createdAt", "DESC", 1, 20},
		{"limit above cap", ListListingsOptions{Page: 2, Limit: 5000}, "createdAt", "DESC", 2, 100},
		{"explicit sort kept", ListListingsOptions{Sort: "companyName", Order: "ASC", Page: 1, Limit: 1}, "companyName", "ASC", 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.opts.normalize(10, 100)
			if c.opts.Sort != c.wantSort || c.opts.Order != c.wantOrder || c.opts.Page != c.wantPage || c.opts.Limit != c.wantLimit {
				t.Errorf("normalize() = {%s %s %d %d}, want {%s %s %d %d}",
					c.opts.Sort, c.opts.Order, c.opts.Page, c.opts.Limit,
					c.wantSort, c.wantOrder, c.wantPage, c.wantLimit)
			}
		})
	}
}
