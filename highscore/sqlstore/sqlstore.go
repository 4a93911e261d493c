package sqlstore

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq" // Import pq driver.
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // Import sqlite driver.

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/highscore"
)

const (
	// DriverPostgres stores scores in postgres through lib/pq.
	DriverPostgres = "postgres"
	// DriverSQLite stores scores in a local sqlite file.
	DriverSQLite = "sqlite"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	slot VARCHAR(255) PRIMARY KEY,
	score INTEGER NOT NULL,
	updated TIMESTAMP NOT NULL
);
`

// NewSQLStore returns a new store using the given database driver and
// connection string.
func NewSQLStore(driver, url string) (*Store, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, errors.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tuning := config.DefaultTuning()
	db.SetMaxOpenConns(tuning.MaxOpenConns)
	db.SetMaxIdleConns(tuning.MaxIdleConns)
	if driver == DriverSQLite {
		// sqlite allows a single writer, queue on one connection instead of
		// failing with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to reach database")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to migrate database")
	}
	return &Store{db: db, driver: driver}, nil
}

// Store represents an SQL store.
type Store struct {
	db     *sql.DB
	driver string
}

// rebind rewrites ? placeholders into the $n form postgres expects.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// transact is a transaction wrapper, helps avoid failed to close connections.
func (s *Store) transact(
	ctx context.Context, txFunc func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
			panic(p) // re-throw panic after Rollback
		} else if err != nil {
			// err is non-nil; don't change it
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
		} else {
			err = tx.Commit() // err is nil; if Commit returns error update err
		}
	}()
	err = txFunc(tx)
	return err
}

// Load reads the score stored in slot.
func (s *Store) Load(ctx context.Context, slot string) (int, error) {
	r := s.db.QueryRowContext(ctx,
		s.rebind("SELECT score FROM high_scores WHERE slot=?"), slot)

	var score int
	if err := r.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, highscore.ErrNotFound
		}
		return 0, errors.Wrapf(err, "unable to load %s", slot)
	}
	return score, nil
}

// Save upserts score into slot.
func (s *Store) Save(ctx context.Context, slot string, score int) error {
	if score < 0 {
		return highscore.ErrInvalidScore
	}
	return s.transact(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, s.rebind(`
		INSERT INTO high_scores (slot, score, updated) VALUES (?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET score=excluded.score, updated=excluded.updated`),
			slot, score, time.Now().UTC(),
		)
		return errors.Wrapf(err, "unable to save %s", slot)
	})
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
