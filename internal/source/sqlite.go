package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/agenthands/interactome/internal/core/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS interactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	db_name TEXT NOT NULL,
	protein_a TEXT NOT NULL,
	protein_b TEXT NOT NULL,
	interaction_type TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interactions_a ON interactions(db_name, protein_a);
CREATE INDEX IF NOT EXISTS idx_interactions_b ON interactions(db_name, protein_b);
`

// Arguments: protein, db, protein, db, protein, db.
const egoNetworkSQL = `
WITH members(id) AS (
	SELECT ?
	UNION
	SELECT protein_b FROM interactions WHERE db_name = ? AND protein_a = ?
	UNION
	SELECT protein_a FROM interactions WHERE db_name = ? AND protein_b = ?
)
SELECT protein_a, protein_b, interaction_type
FROM interactions
WHERE db_name = ?
	AND protein_a IN (SELECT id FROM members)
	AND protein_b IN (SELECT id FROM members)
ORDER BY id
`

// SQLiteSource reads interactions from a local SQLite table.
type SQLiteSource struct {
	db *sql.DB
}

func NewSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error) {
	name := string(db)
	rows, err := s.db.QueryContext(ctx, egoNetworkSQL,
		proteinID, name, proteinID, name, proteinID, name)
	if err != nil {
		return nil, unavailable(db, err)
	}
	defer rows.Close()

	records := []model.InteractionRecord{}
	for rows.Next() {
		var r model.InteractionRecord
		if err := rows.Scan(&r.ProteinA, &r.ProteinB, &r.InteractionType); err != nil {
			return nil, unavailable(db, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(db, err)
	}
	return records, nil
}

// Import appends records for db in one transaction.
func (s *SQLiteSource) Import(ctx context.Context, db model.Database, records []model.InteractionRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO interactions (db_name, protein_a, protein_b, interaction_type) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, string(db), r.ProteinA, r.ProteinB, r.InteractionType); err != nil {
			return fmt.Errorf("import record %d: %w", i, err)
		}
	}
	return tx.Commit()
}
