package commands

import (
	"io"
	"time"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/battlesnakeio/snake/highscore/filestore"
	"github.com/battlesnakeio/snake/highscore/redis"
	"github.com/battlesnakeio/snake/highscore/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultSQLitePath = "snake.db"

var (
	storeBackend = "file"
	storeArgs    = ""
	storeSlot    = highscore.DefaultSlot
	storeTimeout = 2 * time.Second
)

func addStoreFlags(c *cobra.Command) {
	c.Flags().StringVarP(&storeBackend, "backend", "b", storeBackend, "high score backend, as one of: [inmem, file, redis, postgres, sqlite]")
	c.Flags().StringVarP(&storeArgs, "backend-args", "a", storeArgs, "options to pass to the backend being used, a directory, redis URL or database URL")
	c.Flags().StringVar(&storeSlot, "slot", storeSlot, "slot the high score is kept under")
	c.Flags().DurationVar(&storeTimeout, "backend-timeout", storeTimeout, "timeout for a single backend call")
}

// openStore returns the instrumented store chosen on the command line.
func openStore() (highscore.Store, error) {
	var (
		store highscore.Store
		err   error
	)
	switch storeBackend {
	case "inmem":
		store = highscore.InMemStore()
	case "file":
		store = filestore.NewFileStore(storeArgs)
	case "redis":
		var s *redis.Store
		if s, err = redis.NewStore(storeArgs); err == nil {
			store = s
		}
	case "postgres":
		var s *sqlstore.Store
		if s, err = sqlstore.NewSQLStore(sqlstore.DriverPostgres, storeArgs); err == nil {
			store = s
		}
	case "sqlite":
		path := storeArgs
		if path == "" {
			path = defaultSQLitePath
		}
		var s *sqlstore.Store
		if s, err = sqlstore.NewSQLStore(sqlstore.DriverSQLite, path); err == nil {
			store = s
		}
	default:
		return nil, errors.Errorf("invalid backend %q", storeBackend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to start up %s backend", storeBackend)
	}
	return highscore.InstrumentStore(store), nil
}

func closeStore(store highscore.Store) {
	c, ok := store.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.WithError(err).Error("unable to close store")
	}
}
