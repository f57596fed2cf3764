package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectToSQL(t *testing.T) {
	query, args, err := Select("id", "name").From("players").
		Where(
			Eq("is_in", true),
			IsNull("deleted_at"),
		).
		OrderBy("id").
		Limit(10).
		ToSQL()

	require.NoError(t, err)
	require.Equal(t, "SELECT id, name FROM players WHERE is_in = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10", query)
	require.Equal(t, []any{true}, args)
}

func TestSelectIn(t *testing.T) {
	query, args, err := Select("id").From("players").
		Where(In("public_id", []any{"a", "b", "c"})).
		ToSQL()

	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM players WHERE public_id IN ($1, $2, $3)", query)
	require.Equal(t, []any{"a", "b", "c"}, args)
}

func TestSelectEmptyInShortCircuits(t *testing.T) {
	query, args, err := Select("id").From("players").
		Where(In("public_id", nil)).
		ToSQL()

	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM players WHERE 1=0", query)
	require.Empty(t, args)
}

func TestSelectValidation(t *testing.T) {
	_, _, err := Select().From("players").ToSQL()
	require.Error(t, err)

	_, _, err = Select("id").ToSQL()
	require.Error(t, err)
}

func TestInsertToSQL(t *testing.T) {
	query, args, err := Insert("players").
		Set("public_id", "p1").
		Set("name", "Alice").
		Set("is_in", true).
		ToSQL()

	require.NoError(t, err)
	require.Equal(t, "INSERT INTO players (public_id, name, is_in) VALUES ($1, $2, $3)", query)
	require.Equal(t, []any{"p1", "Alice", true}, args)
}

func TestInsertSuffix(t *testing.T) {
	query, _, err := Insert("team_assignments").
		Set("singleton", true).
		Suffix("ON CONFLICT (singleton) DO UPDATE SET singleton = EXCLUDED.singleton").
		ToSQL()

	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO team_assignments (singleton) VALUES ($1) ON CONFLICT (singleton) DO UPDATE SET singleton = EXCLUDED.singleton",
		query)
}

func TestUpdateToSQL(t *testing.T) {
	query, args, err := Update("players").
		Set("name", "Bob").
		Set("has_paid", true).
		Where(Eq("public_id", "p1")).
		ToSQL()

	require.NoError(t, err)
	require.Equal(t, "UPDATE players SET name = $1, has_paid = $2 WHERE public_id = $3", query)
	require.Equal(t, []any{"Bob", true, "p1"}, args)
}

func TestDeleteToSQL(t *testing.T) {
	query, args, err := Delete("players").
		Where(Eq("public_id", "p1")).
		ToSQL()

	require.NoError(t, err)
	require.Equal(t, "DELETE FROM players WHERE public_id = $1", query)
	require.Equal(t, []any{"p1"}, args)
}

func TestDeleteRequiresCondition(t *testing.T) {
	_, _, err := Delete("players").ToSQL()
	require.Error(t, err)
}
