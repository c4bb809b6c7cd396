// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func testBuilderDB(dialect string) *DB {
	return newDB(nil, dialect, nil, logger.Nop())
}

func Test_buildListContactsQuery_SQLContainsParts(t *testing.T) {
	db := testBuilderDB(DialectPostgres)
	categoryID := int64(4)

	query, args, err := db.buildListContactsQuery("alice", models.ListQuery{
		Search:     "Ann",
		CategoryID: &categoryID,
		Sort:       models.SortFirstNameDesc,
		Page:       3,
		PageSize:   20,
	})
	require.NoError(t, err)

	// args: owner, category, then the four search patterns
	require.Equal(t, []any{"alice", categoryID, "%Ann%", "%Ann%", "%Ann%", "%Ann%"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from contacts c join categories cat on cat.id = c.category_id")
	require.Contains(t, q, "c.owner_user_id = $1")
	require.Contains(t, q, "c.category_id = $2")
	require.Contains(t, q, "lower(c.first_name || ' ' || c.last_name) like lower($3)")
	require.Contains(t, q, "lower(c.last_name || ' ' || c.first_name) like lower($4)")
	require.Contains(t, q, "lower(coalesce(c.email, '')) like lower($5)")
	require.Contains(t, q, "lower(coalesce(c.phone, '')) like lower($6)")
	require.Contains(t, q, "order by c.first_name desc, c.id asc")
	require.Contains(t, q, "limit 20 offset 40")
}

func Test_buildListContactsQuery_Sorts(t *testing.T) {
	db := testBuilderDB(DialectPostgres)

	tests := []struct {
		sort models.SortOrder
		want string
	}{
		{sort: models.SortNameAsc, want: "ORDER BY c.last_name ASC, c.id ASC"},
		{sort: models.SortNameDesc, want: "ORDER BY c.last_name DESC, c.id ASC"},
		{sort: models.SortFirstNameAsc, want: "ORDER BY c.first_name ASC, c.id ASC"},
		{sort: models.SortFirstNameDesc, want: "ORDER BY c.first_name DESC, c.id ASC"},
		{sort: models.SortCreatedAsc, want: "ORDER BY c.created_at ASC, c.id ASC"},
		{sort: models.SortCreatedDesc, want: "ORDER BY c.created_at DESC, c.id ASC"},
		{sort: models.SortOrder("bogus"), want: "ORDER BY c.last_name ASC, c.id ASC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			query, _, err := db.buildListContactsQuery("alice", models.ListQuery{Sort: tt.sort, Page: 1, PageSize: 10})
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
		})
	}
}

func Test_contactListFilter_EscapesWildcards(t *testing.T) {
	db := testBuilderDB(DialectSQLite)

	_, args, err := db.buildCountContactsQuery("alice", models.ListQuery{Search: `50%_off\`})
	require.NoError(t, err)

	require.Len(t, args, 5)
	assert.Equal(t, `%50\%\_off\\%`, args[1])
}

func Test_buildCountContactsQuery_NoPaging(t *testing.T) {
	db := testBuilderDB(DialectSQLite)

	query, args, err := db.buildCountContactsQuery("alice", models.ListQuery{Page: 5, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM contacts c WHERE (c.owner_user_id = ?)", query)
	assert.Equal(t, []any{"alice"}, args)
	assert.NotContains(t, strings.ToLower(query), "limit")
}

func Test_buildUpdateContactQuery_NeverTouchesImmutableColumns(t *testing.T) {
	db := testBuilderDB(DialectPostgres)

	query, _, err := db.buildUpdateContactQuery(models.Contact{ID: 1, OwnerUserID: "alice", FirstName: "A", LastName: "B", CategoryID: 2})
	require.NoError(t, err)

	set := query[strings.Index(query, "SET"):strings.Index(query, "WHERE")]
	assert.NotContains(t, set, "created_at")
	assert.NotContains(t, set, "owner_user_id")
	assert.NotContains(t, set, "owner_user_name")
	assert.Contains(t, query, "WHERE id = $10 AND owner_user_id = $11")
}

func Test_buildSelectCategoryQuery_LockSuffix(t *testing.T) {
	pg := testBuilderDB(DialectPostgres)
	query, args, err := pg.buildSelectCategoryQuery("alice", 3, pg.lockForKeyShare())
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, owner_user_id FROM categories WHERE id = $1 AND owner_user_id = $2 FOR KEY SHARE", query)
	assert.Equal(t, []any{int64(3), "alice"}, args)

	lite := testBuilderDB(DialectSQLite)
	query, _, err = lite.buildSelectCategoryQuery("alice", 3, lite.lockForKeyShare())
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, owner_user_id FROM categories WHERE id = ? AND owner_user_id = ?", query)
}

func Test_buildLockContactQuery(t *testing.T) {
	query, args, err := testBuilderDB(DialectSQLite).buildLockContactQuery("alice", 8)
	require.NoError(t, err)
	assert.Equal(t, "SELECT created_at, owner_user_name FROM contacts WHERE id = ? AND owner_user_id = ?", query)
	assert.Equal(t, []any{int64(8), "alice"}, args)
}
