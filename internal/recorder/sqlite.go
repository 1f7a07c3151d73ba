package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SignalScout/internal/model"
)

// SQLiteRecorder persists the trade log and scan history to a SQLite
// database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
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
		`CREATE TABLE IF NOT EXISTS trade_reviews (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			date      TEXT NOT NULL,
			symbol    TEXT NOT NULL,
			hit       INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_symbol ON trade_reviews(symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_ts ON trade_reviews(timestamp)`,

		`CREATE TABLE IF NOT EXISTS scan_snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			regime        TEXT,
			breadth_ratio REAL,
			volatility    REAL,
			index_return  REAL,
			analyzed      INTEGER,
			skipped       INTEGER,
			super_count   INTEGER,
			strong_count  INTEGER,
			normal_count  INTEGER,
			review_hits   INTEGER,
			review_total  INTEGER,
			orders_placed INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scan_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordReview(row *model.TradeLogRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hit := 0
	if row.Hit {
		hit = 1
	}
	_, err := r.db.Exec(`INSERT INTO trade_reviews (timestamp, date, symbol, hit) VALUES (?,?,?,?)`,
		time.Now().Unix(), row.Date.Format("2006-01-02"), row.Symbol, hit,
	)
	return err
}

func (r *SQLiteRecorder) RecordScan(snap *ScanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scan_snapshots
		(timestamp, regime, breadth_ratio, volatility, index_return,
		 analyzed, skipped, super_count, strong_count, normal_count,
		 review_hits, review_total, orders_placed)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), string(snap.Regime.Mode), snap.Regime.BreadthRatio,
		snap.Regime.VolatilityIndex, snap.Regime.IndexDayReturn,
		snap.Analyzed, snap.Skipped, snap.SuperCount, snap.StrongCount,
		snap.NormalCount, snap.ReviewHits, snap.ReviewTotal, snap.OrdersPlaced,
	)
	return err
}

func (r *SQLiteRecorder) TickerStats() (map[string]model.TickerStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT symbol, COUNT(*), SUM(hit) FROM trade_reviews GROUP BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("aggregate trade log: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]model.TickerStats)
	for rows.Next() {
		var s model.TickerStats
		if err := rows.Scan(&s.Symbol, &s.Count, &s.Hits); err != nil {
			return nil, fmt.Errorf("scan trade log row: %w", err)
		}
		if s.Count > 0 {
			s.HitRate = float64(s.Hits) / float64(s.Count)
		}
		stats[s.Symbol] = s
	}
	return stats, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
