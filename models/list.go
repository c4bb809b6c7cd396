// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strings"
)

// SortOrder names one of the supported contact list orderings.
type SortOrder string

// Supported contact list orderings. Every order is followed by id ascending
// so that equal keys always come out in the same sequence.
const (
	SortNameAsc       SortOrder = "nameAsc"
	SortNameDesc      SortOrder = "nameDesc"
	SortFirstNameAsc  SortOrder = "firstNameAsc"
	SortFirstNameDesc SortOrder = "firstNameDesc"
	SortCreatedAsc    SortOrder = "createdAsc"
	SortCreatedDesc   SortOrder = "createdDesc"
)

// DefaultSortOrder is used when no or an unknown sort value is given.
const DefaultSortOrder = SortNameAsc

// Default paging parameters used when no configuration overrides them.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// sortAliases maps accepted sort tokens (lower-cased) to canonical orders.
// The legacy tokens are the ones used by the first version of the web UI.
var sortAliases = map[string]SortOrder{
	"nameasc":       SortNameAsc,
	"namedesc":      SortNameDesc,
	"firstnameasc":  SortFirstNameAsc,
	"firstnamedesc": SortFirstNameDesc,
	"createdasc":    SortCreatedAsc,
	"createddesc":   SortCreatedDesc,

	"nom_asc":     SortNameAsc,
	"nom_desc":    SortNameDesc,
	"prenom_asc":  SortFirstNameAsc,
	"prenom_desc": SortFirstNameDesc,
	"date_asc":    SortCreatedAsc,
	"date_desc":   SortCreatedDesc,
}

// ParseSortOrder resolves a raw sort token. Unknown values fall back to
// [DefaultSortOrder] without an error.
func ParseSortOrder(raw string) SortOrder {
	if order, ok := sortAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return order
	}
	return DefaultSortOrder
}

// ListQuery holds the untrusted list parameters for contacts.
type ListQuery struct {
	Search     string
	CategoryID *int64
	Sort       SortOrder
	Page       int
	PageSize   int
}

// Offset returns the number of rows to skip for the current page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Normalize returns a copy of q with defaults applied: the search term is
// trimmed, the sort order resolved, pageSize clamped into [1, maxPageSize]
// (non-positive values become defaultPageSize) and page clamped into
// [1, MaxPage(pageSize)].
func (q ListQuery) Normalize(defaultPageSize, maxPageSize int) ListQuery {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}

	out := q
	out.Search = strings.TrimSpace(q.Search)
	out.Sort = ParseSortOrder(string(q.Sort))

	if out.Page < 1 {
		out.Page = DefaultPage
	}

	switch {
	case out.PageSize <= 0:
		out.PageSize = defaultPageSize
	case out.PageSize > maxPageSize:
		out.PageSize = maxPageSize
	}

	if limit := MaxPage(out.PageSize); out.Page > limit {
		out.Page = limit
	}

	return out
}

// MaxPage is the largest page whose [ListQuery.Offset] fits in an int.
// Such a page is always past the end of any real contact list.
func MaxPage(pageSize int) int {
	if pageSize <= 0 {
		return math.MaxInt
	}
	return math.MaxInt / pageSize
}

// ContactPage is a single page of the filtered, sorted contact list.
type ContactPage struct {
	Items      []Contact  `json:"items"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
	Categories []Category `json:"categories"`

	// echo of the normalized query
	Search     string    `json:"search,omitempty"`
	CategoryID *int64    `json:"category_id,omitempty"`
	Sort       SortOrder `json:"sort"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// TotalPages returns ceil(totalCount / pageSize), or zero for an empty set.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
