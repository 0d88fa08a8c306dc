package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"wineapi/internal/database"
	"wineapi/internal/model"
	"wineapi/internal/repository"
)

// columns is the single mapping between WineRecord fields and table columns.
// Every query and scan below is derived from it.
var columns = []struct {
	name  string
	field func(r *model.WineRecord) any
}{
	{"name", func(r *model.WineRecord) any { return &r.Name }},
	{"supplier", func(r *model.WineRecord) any { return &r.Supplier }},
	{"identity_document", func(r *model.WineRecord) any { return &r.IdentityDocument }},
	{"fixed_acidity", func(r *model.WineRecord) any { return &r.FixedAcidity }},
	{"volatile_acidity", func(r *model.WineRecord) any { return &r.VolatileAcidity }},
	{"citric_acid", func(r *model.WineRecord) any { return &r.CitricAcid }},
	{"residual_sugar", func(r *model.WineRecord) any { return &r.ResidualSugar }},
	{"chlorides", func(r *model.WineRecord) any { return &r.Chlorides }},
	{"free_sulfur_dioxide", func(r *model.WineRecord) any { return &r.FreeSulfurDioxide }},
	{"total_sulfur_dioxide", func(r *model.WineRecord) any { return &r.TotalSulfurDioxide }},
	{"density", func(r *model.WineRecord) any { return &r.Density }},
	{"ph", func(r *model.WineRecord) any { return &r.PH }},
	{"sulphates", func(r *model.WineRecord) any { return &r.Sulphates }},
	{"alcohol", func(r *model.WineRecord) any { return &r.Alcohol }},
	{"classification", func(r *model.WineRecord) any { return &r.Classification }},
}

var (
	qInsert string
	qSelect string
	qUpdate string
	qDelete = `DELETE FROM wine_records WHERE id = ?`
)

func init() {
	names := make([]string, len(columns))
	sets := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
		sets[i] = c.name + " = ?"
		marks[i] = "?"
	}
	qInsert = fmt.Sprintf(`INSERT INTO wine_records (%s) VALUES (%s) RETURNING id`,
		strings.Join(names, ", "), strings.Join(marks, ", "))
	qSelect = fmt.Sprintf(`SELECT id, %s FROM wine_records ORDER BY id`, strings.Join(names, ", "))
	qUpdate = fmt.Sprintf(`UPDATE wine_records SET %s WHERE id = ?`, strings.Join(sets, ", "))
}

// values returns the column values of rec in column order.
func values(rec *model.WineRecord) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		switch p := c.field(rec).(type) {
		case *string:
			out[i] = *p
		case *float64:
			out[i] = *p
		case *model.Classification:
			out[i] = string(*p)
		}
	}
	return out
}

// scanTargets returns pointers into rec for id followed by every column.
func scanTargets(rec *model.WineRecord) []any {
	out := make([]any, 0, len(columns)+1)
	out = append(out, &rec.ID)
	for _, c := range columns {
		out = append(out, c.field(rec))
	}
	return out
}

// WineSQL implements repository.WineRepository on database/sql with
// parameterized queries. It works against SQLite and PostgreSQL.
type WineSQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewWineSQL creates a new WineSQL repository.
func NewWineSQL(db *database.DB) *WineSQL {
	return &WineSQL{db: db.DB, dialect: db.Dialect}
}

var _ repository.WineRepository = (*WineSQL)(nil)

// Insert writes a new row and returns the id assigned by the database.
func (r *WineSQL) Insert(ctx context.Context, rec *model.WineRecord) (int64, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(qInsert), values(rec)...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns all rows ordered by id.
func (r *WineSQL) List(ctx context.Context) ([]model.WineRecord, error) {
	rows, err := r.db.QueryContext(ctx, qSelect)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.WineRecord, 0)
	for rows.Next() {
		var rec model.WineRecord
		if err := rows.Scan(scanTargets(&rec)...); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites every column of the row with the given id.
func (r *WineSQL) Update(ctx context.Context, id int64, rec *model.WineRecord) (bool, error) {
	args := append(values(rec), id)
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(qUpdate), args...)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// Delete removes the row with the given id.
func (r *WineSQL) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(qDelete), id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
