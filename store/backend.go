package store

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// backend keeps serialized store document. Reading document which was never
// written returns fs.ErrNotExist.
type backend interface {
	read() ([]byte, error)
	write(data []byte) error
}

func backendFor(path string) backend {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return &sqliteBackend{path: path}
	}
	return &fileBackend{path: path}
}

type fileBackend struct {
	path string
}

func (b *fileBackend) read() ([]byte, error) {
	return os.ReadFile(b.path)
}

// write replaces file atomically.
func (b *fileBackend) write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(b.path), filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	err = multierr.Append(err, f.Close())
	if err == nil {
		err = os.Rename(f.Name(), b.path)
	}
	if err != nil {
		os.Remove(f.Name())
	}
	return err
}

// document name in the database, there is only one for now
const documentName = "tags"

const schema = `CREATE TABLE IF NOT EXISTS documents (
	name  TEXT PRIMARY KEY,
	data  BLOB NOT NULL,
	saved TEXT NOT NULL
)`

type sqliteBackend struct {
	path string
}

func (b *sqliteBackend) open(flags ...sqlite.OpenFlags) (*sqlite.Conn, error) {
	conn, err := sqlite.OpenConn(b.path, flags...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlitex.ExecuteTransient(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("prepare database: %w", err)
	}
	return conn, nil
}

func (b *sqliteBackend) read() (data []byte, err error) {
	// opening would create the database otherwise
	if _, err := os.Stat(b.path); err != nil {
		return nil, err
	}
	conn, err := b.open(sqlite.OpenReadWrite)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, conn.Close())
	}()

	found := false
	err = sqlitex.Execute(conn, `SELECT data FROM documents WHERE name = ?`,
		&sqlitex.ExecOptions{
			Args: []any{documentName},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				data, err = io.ReadAll(stmt.ColumnReader(0))
				return err
			}})
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if !found {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (b *sqliteBackend) write(data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return err
	}
	conn, err := b.open(sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, conn.Close())
	}()

	err = sqlitex.Execute(conn, `INSERT INTO documents (name, data, saved) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, saved = excluded.saved`,
		&sqlitex.ExecOptions{
			Args: []any{documentName, data, time.Now().UTC().Format(time.RFC3339)},
		})
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
