package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// Table names come from the models so schema and queries agree on them.
var (
	usersTable      = models.User{}.TableName()
	categoriesTable = models.Category{}.TableName()
	contactsTable   = models.Contact{}.TableName()
)

var (
	userColumns     = []string{"user_id", "login", "password_hash", "created_at"}
	categoryColumns = []string{"id", "name", "owner_user_id"}
	contactColumns  = []string{
		"c.id", "c.first_name", "c.last_name", "c.address", "c.city", "c.province",
		"c.postal_code", "c.phone", "c.email", "c.created_at", "c.category_id",
		"cat.name", "c.owner_user_id", "c.owner_user_name",
	}
)

// contactSortColumns lists the ORDER BY terms of every sort order. The id
// tie-break keeps pages stable when sort keys are equal.
var contactSortColumns = map[models.SortOrder][]string{
	models.SortNameAsc:       {"c.last_name ASC", "c.id ASC"},
	models.SortNameDesc:      {"c.last_name DESC", "c.id ASC"},
	models.SortFirstNameAsc:  {"c.first_name ASC", "c.id ASC"},
	models.SortFirstNameDesc: {"c.first_name DESC", "c.id ASC"},
	models.SortCreatedAsc:    {"c.created_at ASC", "c.id ASC"},
	models.SortCreatedDesc:   {"c.created_at DESC", "c.id ASC"},
}

// likeEscaper makes LIKE wildcards in user input match literally
// (used with ESCAPE '\').
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Login, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func (db *DB) buildSelectUserByLoginQuery(login string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// ─────────────────────────────────────────────
// categories
// ─────────────────────────────────────────────

func (db *DB) buildSelectCategoriesQuery(userID string) (string, []any, error) {
	return db.builder.
		Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"owner_user_id": userID}).
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func (db *DB) buildSelectCategoryQuery(userID string, categoryID int64, suffix string) (string, []any, error) {
	b := db.builder.
		Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"id": categoryID, "owner_user_id": userID})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	return b.ToSql()
}

func (db *DB) buildInsertCategoryQuery(category models.Category) (string, []any, error) {
	return db.builder.
		Insert(categoriesTable).
		Columns("name", "owner_user_id").
		Values(category.Name, category.OwnerUserID).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildUpdateCategoryQuery(category models.Category) (string, []any, error) {
	return db.builder.
		Update(categoriesTable).
		Set("name", category.Name).
		Where(sq.Eq{"id": category.ID, "owner_user_id": category.OwnerUserID}).
		Suffix("RETURNING " + strings.Join(categoryColumns, ", ")).
		ToSql()
}

func (db *DB) buildCountCategoryContactsQuery(categoryID int64) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(contactsTable).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
}

func (db *DB) buildDeleteCategoryQuery(userID string, categoryID int64) (string, []any, error) {
	return db.builder.
		Delete(categoriesTable).
		Where(sq.Eq{"id": categoryID, "owner_user_id": userID}).
		ToSql()
}

// ─────────────────────────────────────────────
// contacts
// ─────────────────────────────────────────────

func (db *DB) selectContacts() sq.SelectBuilder {
	return db.builder.
		Select(contactColumns...).
		From(contactsTable + " c").
		Join(categoriesTable + " cat ON cat.id = c.category_id")
}

// contactListFilter composes the owner, category and search predicates of
// the contact list. An empty search term matches everything.
// SQLite's LOWER folds ASCII letters only.
func contactListFilter(userID string, query models.ListQuery) sq.And {
	filter := sq.And{sq.Eq{"c.owner_user_id": userID}}

	if query.CategoryID != nil {
		filter = append(filter, sq.Eq{"c.category_id": *query.CategoryID})
	}

	if query.Search != "" {
		pattern := "%" + likeEscaper.Replace(query.Search) + "%"
		filter = append(filter, sq.Or{
			sq.Expr(`LOWER(c.first_name || ' ' || c.last_name) LIKE LOWER(?) ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(c.last_name || ' ' || c.first_name) LIKE LOWER(?) ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(COALESCE(c.email, '')) LIKE LOWER(?) ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(COALESCE(c.phone, '')) LIKE LOWER(?) ESCAPE '\'`, pattern),
		})
	}

	return filter
}

// buildListContactsQuery returns one page of the filtered contacts. query
// must be normalized.
func (db *DB) buildListContactsQuery(userID string, query models.ListQuery) (string, []any, error) {
	orderBy, ok := contactSortColumns[query.Sort]
	if !ok {
		orderBy = contactSortColumns[models.DefaultSortOrder]
	}

	return db.selectContacts().
		Where(contactListFilter(userID, query)).
		OrderBy(orderBy...).
		Limit(uint64(query.PageSize)).
		Offset(uint64(query.Offset())).
		ToSql()
}

// buildCountContactsQuery counts the filtered contacts without paging.
func (db *DB) buildCountContactsQuery(userID string, query models.ListQuery) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(contactsTable + " c").
		Where(contactListFilter(userID, query)).
		ToSql()
}

func (db *DB) buildSelectContactQuery(userID string, contactID int64) (string, []any, error) {
	return db.selectContacts().
		Where(sq.Eq{"c.id": contactID, "c.owner_user_id": userID}).
		ToSql()
}

// buildLockContactQuery selects the immutable columns of an owned contact and
// locks the row for the rest of the transaction.
func (db *DB) buildLockContactQuery(userID string, contactID int64) (string, []any, error) {
	b := db.builder.
		Select("created_at", "owner_user_name").
		From(contactsTable).
		Where(sq.Eq{"id": contactID, "owner_user_id": userID})
	if suffix := db.lockForUpdate(); suffix != "" {
		b = b.Suffix(suffix)
	}
	return b.ToSql()
}

func (db *DB) buildInsertContactQuery(contact models.Contact) (string, []any, error) {
	return db.builder.
		Insert(contactsTable).
		Columns(
			"first_name", "last_name", "address", "city", "province", "postal_code",
			"phone", "email", "created_at", "category_id", "owner_user_id", "owner_user_name",
		).
		Values(
			contact.FirstName, contact.LastName, contact.Address, contact.City, contact.Province, contact.PostalCode,
			contact.Phone, contact.Email, contact.CreatedAt, contact.CategoryID, contact.OwnerUserID, contact.OwnerUserName,
		).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateContactQuery rewrites the editable columns only. created_at and
// the owner columns are never part of the SET list.
func (db *DB) buildUpdateContactQuery(contact models.Contact) (string, []any, error) {
	return db.builder.
		Update(contactsTable).
		SetMap(map[string]any{
			"first_name":  contact.FirstName,
			"last_name":   contact.LastName,
			"address":     contact.Address,
			"city":        contact.City,
			"province":    contact.Province,
			"postal_code": contact.PostalCode,
			"phone":       contact.Phone,
			"email":       contact.Email,
			"category_id": contact.CategoryID,
		}).
		Where(sq.Eq{"id": contact.ID, "owner_user_id": contact.OwnerUserID}).
		ToSql()
}

func (db *DB) buildDeleteContactQuery(userID string, contactID int64) (string, []any, error) {
	return db.builder.
		Delete(contactsTable).
		Where(sq.Eq{"id": contactID, "owner_user_id": userID}).
		ToSql()
}

// ─────────────────────────────────────────────
// summary
// ─────────────────────────────────────────────

func (db *DB) buildSummaryQuery(userID string) (string, []any, error) {
	return db.builder.
		Select().
		Column(sq.Expr("(SELECT COUNT(*) FROM "+contactsTable+" WHERE owner_user_id = ?)", userID)).
		Column(sq.Expr("(SELECT COUNT(*) FROM "+categoriesTable+" WHERE owner_user_id = ?)", userID)).
		ToSql()
}
