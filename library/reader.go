// Package library provides API for reading and writing schematic catalogs
// stored as SQLite databases.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package library

import (
	"database/sql"
	"errors"
	"fmt"
)

// Reader implements schematic.Reader interface for SQLite catalogs.
type Reader struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// NewReader creates a new Reader for the given catalog file path.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare("SELECT data FROM schematics WHERE name = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Reader{db: db, stmt: stmt}, nil
}

func (r *Reader) Close() error {
	return errors.Join(r.stmt.Close(), r.db.Close())
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

func (r *Reader) ReadSchematic(name string) ([]byte, error) {
	var data []byte
	if err := r.stmt.QueryRow(name).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return make([]byte, 0), nil
		}
		return nil, err
	}

	return data, nil
}

func (r *Reader) VisitSchematics(visitor func(string, []byte) error) error {
	rows, err := r.db.Query("SELECT name, data FROM schematics")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var data []byte

		if err := rows.Scan(&name, &data); err != nil {
			return err
		}

		if err := visitor(name, data); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}
