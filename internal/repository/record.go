package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Record is one honest finished game: won without the solver or a
// forfeit.
type Record struct {
	GameSessionID int64   `json:"game_session_id"`
	Username      *string `json:"username"`
	Givens        string  `json:"givens"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username *string
	Givens   *string
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Givens != nil {
		clauses = append(clauses, "givens = @givens")
		args["givens"] = *f.Givens
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]Record, error) {
	query := `
	SELECT
		game_session_id,
		username,
		givens,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		won = true
		AND forfeited = false
		AND used_solve = false
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
