package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			symbol              TEXT NOT NULL,
			interval            TEXT,
			trigger_type        TEXT,
			observations        INTEGER,
			last_close          REAL,
			change_pct          REAL,
			streak_length       INTEGER,
			streak_direction    TEXT,
			next_upside         REAL,
			next_downside       REAL,
			after_up_upside     REAL,
			after_up_downside   REAL,
			after_down_upside   REAL,
			after_down_downside REAL,
			up_run_count        INTEGER,
			down_run_count      INTEGER,
			longest_up_run      INTEGER,
			longest_down_run    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol)`,

		`CREATE TABLE IF NOT EXISTS scans (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			interval    TEXT,
			scanned     INTEGER,
			failed      INTEGER,
			returned    INTEGER,
			top_symbol  TEXT,
			top_edge    REAL,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(rec *AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := rec.Analysis
	p := a.Projection
	_, err := r.db.Exec(`INSERT INTO analyses
		(timestamp, symbol, interval, trigger_type, observations, last_close, change_pct,
		 streak_length, streak_direction,
		 next_upside, next_downside,
		 after_up_upside, after_up_downside, after_down_upside, after_down_downside,
		 up_run_count, down_run_count, longest_up_run, longest_down_run)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), a.Symbol, a.Interval, rec.Trigger, a.Observations,
		a.LastClose, a.ChangePct,
		a.Current.Length, string(a.Current.Direction),
		p.NextUpside, p.NextDownside,
		p.AfterUpUpside, p.AfterUpDownside, p.AfterDownUpside, p.AfterDownDownside,
		a.UpStats.Count, a.DownStats.Count, a.UpStats.Longest, a.DownStats.Longest,
	)
	return err
}

func (r *SQLiteRecorder) RecordScan(evt *ScanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scans
		(timestamp, interval, scanned, failed, returned, top_symbol, top_edge, duration_ms)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Interval, evt.Scanned, evt.Failed, evt.Returned,
		evt.TopSymbol, evt.TopEdge, evt.DurationMs,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
