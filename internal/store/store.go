// Package store exports a built dictionary into a SQLite database for
// ad-hoc inspection with standard SQL tooling. The JSON artifact stays
// the canonical exchange format; the database is a convenience view.
package store

import (
	"database/sql"
	"fmt"

	"github.com/logos-lang/atlas/internal/morph"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS lemmas (
	id     INTEGER PRIMARY KEY,
	text   TEXT NOT NULL,
	gender TEXT NOT NULL,
	pos    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS paradigms (
	id INTEGER PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS endings (
	paradigm_id INTEGER NOT NULL REFERENCES paradigms(id),
	position    INTEGER NOT NULL,
	flags       INTEGER NOT NULL,
	suffix      TEXT NOT NULL,
	PRIMARY KEY (paradigm_id, position)
);
`

// Open opens (creating if needed) the export database at path and
// ensures the schema exists.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return conn, nil
}

// Export writes the dictionary into conn inside one transaction,
// replacing any previous contents.
func Export(conn *sql.DB, dict morph.Dictionary) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("starting export: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"endings", "paradigms", "lemmas"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, l := range dict.Lemmas {
		_, err := tx.Exec(
			`INSERT INTO lemmas (id, text, gender, pos) VALUES (?, ?, ?, ?)`,
			l.ID, l.Text, string(l.Gender), string(l.POS),
		)
		if err != nil {
			return fmt.Errorf("inserting lemma %d: %w", l.ID, err)
		}
	}

	for _, p := range dict.Paradigms {
		if _, err := tx.Exec(`INSERT INTO paradigms (id) VALUES (?)`, p.ID); err != nil {
			return fmt.Errorf("inserting paradigm %d: %w", p.ID, err)
		}
		for pos, e := range p.Endings {
			_, err := tx.Exec(
				`INSERT INTO endings (paradigm_id, position, flags, suffix) VALUES (?, ?, ?, ?)`,
				p.ID, pos, int(e.Flags), e.Suffix,
			)
			if err != nil {
				return fmt.Errorf("inserting ending %d/%d: %w", p.ID, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

// Counts returns the number of stored lemmas and paradigms.
func Counts(conn *sql.DB) (lemmas, paradigms int, err error) {
	if err = conn.QueryRow(`SELECT COUNT(*) FROM lemmas`).Scan(&lemmas); err != nil {
		return 0, 0, fmt.Errorf("counting lemmas: %w", err)
	}
	if err = conn.QueryRow(`SELECT COUNT(*) FROM paradigms`).Scan(&paradigms); err != nil {
		return 0, 0, fmt.Errorf("counting paradigms: %w", err)
	}
	return lemmas, paradigms, nil
}
