package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// psql builds statements with $n placeholders. PostgreSQL requires them and
// SQLite accepts them as well, so one builder serves both dialects.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "email", "name", "password", "is_active", "is_staff", "is_superuser", "last_login", "created_at",
}

var recipeColumns = []string{
	"id", "user_id", "title", "time_minutes", "price", "description", "link", "created_at", "updated_at",
}

// labelTables describes where a label kind is stored and how recipes link to it.
type labelTables struct {
	table       string
	assocTable  string
	assocColumn string
}

var labelTablesByKind = map[models.LabelKind]labelTables{
	models.TagLabel:        {table: "tags", assocTable: "recipe_tags", assocColumn: "tag_id"},
	models.IngredientLabel: {table: "ingredients", assocTable: "recipe_ingredients", assocColumn: "ingredient_id"},
}

func tablesForKind(kind models.LabelKind) (labelTables, error) {
	tables, ok := labelTablesByKind[kind]
	if !ok {
		return labelTables{}, fmt.Errorf("%w: %q", ErrUnknownLabelKind, kind)
	}
	return tables, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("email", "name", "password", "is_active", "is_staff", "is_superuser").
		Values(user.Email, user.Name, user.Password, user.IsActive, user.IsStaff, user.IsSuperuser).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	return psql.Update("users").
		SetMap(userUpdateColumns(update)).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// userUpdateColumns returns the columns changed by update. An empty map
// makes the UPDATE builder fail, so callers check [models.UserUpdate.IsEmpty] first.
func userUpdateColumns(update models.UserUpdate) map[string]any {
	set := make(map[string]any, 3)
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	return set
}

func buildSetLastLoginQuery(userID int64) (string, []any, error) {
	return psql.Update("users").
		Set("last_login", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ── tokens ────────────────────────────────────────────────────────────────────

func buildInsertTokenQuery(userID int64, key string) (string, []any, error) {
	return psql.Insert("auth_tokens").
		Columns("token_key", "user_id").
		Values(key, userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
}

func buildSelectTokenQuery(userID int64) (string, []any, error) {
	return psql.Select("token_key", "user_id", "created_at").
		From("auth_tokens").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSelectUserByTokenQuery(key string) (string, []any, error) {
	columns := make([]string, 0, len(userColumns))
	for _, c := range userColumns {
		columns = append(columns, "u."+c)
	}

	return psql.Select(columns...).
		From("auth_tokens t").
		Join("users u ON u.id = t.user_id").
		Where(sq.Eq{"t.token_key": key}).
		ToSql()
}

// ── labels ────────────────────────────────────────────────────────────────────

func buildListLabelsQuery(tables labelTables, userID int64) (string, []any, error) {
	return psql.Select("id", "name", "user_id").
		From(tables.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name DESC", "id DESC").
		ToSql()
}

func buildInsertLabelQuery(tables labelTables, userID int64, name string) (string, []any, error) {
	return psql.Insert(tables.table).
		Columns("name", "user_id").
		Values(name, userID).
		Suffix("RETURNING id, name, user_id").
		ToSql()
}

func buildSelectLabelQuery(tables labelTables, userID, labelID int64) (string, []any, error) {
	return psql.Select("id", "name", "user_id").
		From(tables.table).
		Where(sq.Eq{"id": labelID, "user_id": userID}).
		ToSql()
}

// buildFindLabelByNameQuery picks the oldest label when duplicates exist.
func buildFindLabelByNameQuery(tables labelTables, userID int64, name string) (string, []any, error) {
	return psql.Select("id", "name", "user_id").
		From(tables.table).
		Where(sq.Eq{"user_id": userID, "name": name}).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildUpdateLabelQuery(tables labelTables, userID, labelID int64, update models.LabelUpdate) (string, []any, error) {
	return psql.Update(tables.table).
		SetMap(labelUpdateColumns(update)).
		Where(sq.Eq{"id": labelID, "user_id": userID}).
		Suffix("RETURNING id, name, user_id").
		ToSql()
}

func labelUpdateColumns(update models.LabelUpdate) map[string]any {
	set := make(map[string]any, 1)
	if update.Name != nil {
		set["name"] = *update.Name
	}
	return set
}

func buildDeleteLabelQuery(tables labelTables, userID, labelID int64) (string, []any, error) {
	return psql.Delete(tables.table).
		Where(sq.Eq{"id": labelID, "user_id": userID}).
		ToSql()
}

// ── recipes ───────────────────────────────────────────────────────────────────

func buildListRecipesQuery(userID int64) (string, []any, error) {
	return psql.Select(recipeColumns...).
		From("recipes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		ToSql()
}

func buildSelectRecipeQuery(userID, recipeID int64) (string, []any, error) {
	return psql.Select(recipeColumns...).
		From("recipes").
		Where(sq.Eq{"id": recipeID, "user_id": userID}).
		ToSql()
}

func buildInsertRecipeQuery(userID int64, input models.RecipeInput) (string, []any, error) {
	return psql.Insert("recipes").
		Columns("user_id", "title", "time_minutes", "price", "description", "link").
		Values(userID, input.Title, *input.TimeMinutes, input.Price.String(), input.Description, input.Link).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateRecipeQuery(userID, recipeID int64, update models.RecipeUpdate) (string, []any, error) {
	query := psql.Update("recipes").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": recipeID, "user_id": userID})

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.TimeMinutes != nil {
		query = query.Set("time_minutes", *update.TimeMinutes)
	}
	if update.Price != nil {
		query = query.Set("price", update.Price.String())
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Link != nil {
		query = query.Set("link", *update.Link)
	}

	return query.ToSql()
}

func buildDeleteRecipeQuery(userID, recipeID int64) (string, []any, error) {
	return psql.Delete("recipes").
		Where(sq.Eq{"id": recipeID, "user_id": userID}).
		ToSql()
}

// buildSelectRecipeLabelsQuery returns (recipe_id, id, name, user_id) rows for
// the labels linked to the given recipes.
func buildSelectRecipeLabelsQuery(tables labelTables, recipeIDs []int64) (string, []any, error) {
	return psql.Select("a.recipe_id", "l.id", "l.name", "l.user_id").
		From(tables.assocTable + " a").
		Join(fmt.Sprintf("%s l ON l.id = a.%s", tables.table, tables.assocColumn)).
		Where(sq.Eq{"a.recipe_id": recipeIDs}).
		OrderBy("a.recipe_id", "l.id").
		ToSql()
}

func buildLinkLabelsQuery(tables labelTables, recipeID int64, labelIDs []int64) (string, []any, error) {
	query := psql.Insert(tables.assocTable).
		Columns("recipe_id", tables.assocColumn)
	for _, id := range labelIDs {
		query = query.Values(recipeID, id)
	}

	return query.ToSql()
}

func buildUnlinkLabelsQuery(tables labelTables, recipeID int64) (string, []any, error) {
	return psql.Delete(tables.assocTable).
		Where(sq.Eq{"recipe_id": recipeID}).
		ToSql()
}
