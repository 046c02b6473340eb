package symbols

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Index caches parsed symbol libraries in SQLite, keyed by library file
// path and modification time. Stock KiCad libraries run to several megabytes
// per file; caching keeps repeated builds from reparsing them.
type Index struct {
	db  *sql.DB
	dir string // symbol library directory being indexed
}

// OpenIndex opens (creating if needed) a symbol index at path, indexing
// libraries under dir.
func OpenIndex(path, dir string) (*Index, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("index path required")
	}
	if parent := filepath.Dir(path); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("create index dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open symbol index: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ix := &Index{db: db, dir: dir}
	if err := ix.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return ix, nil
}

func (ix *Index) init(ctx context.Context) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := ix.db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("apply pragma: %w", err)
		}
	}

	schema := `
CREATE TABLE IF NOT EXISTS lib_files (
	lib   TEXT PRIMARY KEY,
	path  TEXT NOT NULL,
	mtime INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS symbols (
	lib         TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (lib, name)
);
CREATE TABLE IF NOT EXISTS pins (
	lib    TEXT NOT NULL,
	symbol TEXT NOT NULL,
	seq    INTEGER NOT NULL,
	num    TEXT NOT NULL,
	name   TEXT NOT NULL,
	type   TEXT NOT NULL,
	PRIMARY KEY (lib, symbol, seq)
);`
	if _, err := ix.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init index schema: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (ix *Index) Close() error {
	if ix == nil || ix.db == nil {
		return nil
	}
	return ix.db.Close()
}

// Lookup resolves "Lib:Symbol" through the cache, reindexing the library
// file when it changed on disk since it was last parsed.
func (ix *Index) Lookup(ctx context.Context, libID string) (Symbol, error) {
	lib, name, ok := strings.Cut(libID, ":")
	if !ok {
		return Symbol{}, fmt.Errorf("symbol id %q is not of the form Lib:Name", libID)
	}
	if err := ix.ensureFresh(ctx, lib); err != nil {
		return Symbol{}, err
	}

	sym := Symbol{Name: name}
	err := ix.db.QueryRowContext(ctx,
		"SELECT description FROM symbols WHERE lib = ? AND name = ?",
		lib, name).Scan(&sym.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return Symbol{}, fmt.Errorf("symbol %s not found in library %s", name, lib)
	}
	if err != nil {
		return Symbol{}, fmt.Errorf("query symbol: %w", err)
	}

	rows, err := ix.db.QueryContext(ctx,
		"SELECT num, name, type FROM pins WHERE lib = ? AND symbol = ? ORDER BY seq",
		lib, name)
	if err != nil {
		return Symbol{}, fmt.Errorf("query pins: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pin Pin
		if err := rows.Scan(&pin.Number, &pin.Name, &pin.Type); err != nil {
			return Symbol{}, fmt.Errorf("scan pin: %w", err)
		}
		sym.Pins = append(sym.Pins, pin)
	}
	return sym, rows.Err()
}

// SearchSymbols returns the names of cached symbols in lib matching the
// given substring, reindexing first when stale.
func (ix *Index) SearchSymbols(ctx context.Context, lib, substr string) ([]string, error) {
	if err := ix.ensureFresh(ctx, lib); err != nil {
		return nil, err
	}
	rows, err := ix.db.QueryContext(ctx,
		"SELECT name FROM symbols WHERE lib = ? AND name LIKE ? ORDER BY name",
		lib, "%"+substr+"%")
	if err != nil {
		return nil, fmt.Errorf("search symbols: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ensureFresh reindexes the library when the file is new or its mtime moved.
func (ix *Index) ensureFresh(ctx context.Context, lib string) error {
	path := LibFile(ix.dir, lib)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("library %s: %w", lib, err)
	}
	mtime := info.ModTime().UnixNano()

	var cached int64
	err = ix.db.QueryRowContext(ctx,
		"SELECT mtime FROM lib_files WHERE lib = ?", lib).Scan(&cached)
	if err == nil && cached == mtime {
		return nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read index state: %w", err)
	}

	parsed, err := ParseLibraryFile(path)
	if err != nil {
		return fmt.Errorf("reindex %s: %w", lib, err)
	}
	return ix.store(ctx, lib, path, mtime, parsed)
}

func (ix *Index) store(ctx context.Context, lib, path string, mtime int64, parsed *Library) error {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reindex: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM symbols WHERE lib = ?",
		"DELETE FROM pins WHERE lib = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, lib); err != nil {
			return fmt.Errorf("clear stale index: %w", err)
		}
	}

	for _, sym := range parsed.Symbols {
		// Store with inheritance flattened so lookups need no joins.
		resolved, _ := parsed.Lookup(sym.Name)
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO symbols (lib, name, description) VALUES (?, ?, ?)",
			lib, resolved.Name, resolved.Description); err != nil {
			return fmt.Errorf("index symbol %s: %w", resolved.Name, err)
		}
		for i, pin := range resolved.Pins {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO pins (lib, symbol, seq, num, name, type) VALUES (?, ?, ?, ?, ?, ?)",
				lib, resolved.Name, i, pin.Number, pin.Name, pin.Type); err != nil {
				return fmt.Errorf("index pin %s.%s: %w", resolved.Name, pin.Number, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO lib_files (lib, path, mtime) VALUES (?, ?, ?) "+
			"ON CONFLICT(lib) DO UPDATE SET path = excluded.path, mtime = excluded.mtime",
		lib, path, mtime); err != nil {
		return fmt.Errorf("record index state: %w", err)
	}
	return tx.Commit()
}
