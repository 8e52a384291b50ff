package viligant

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/app"
	"github.com/lukejerome/viligant-tracker-dk/internal/db"
	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	log.Debugw("opening database", "path", path)
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func sessions(sqldb *sql.DB) *service.SessionDirectory {
	latency := time.Duration(0)
	if cfg != nil {
		latency = cfg.AuthLatency
	}
	return service.NewSessionDirectory(sqldb, latency)
}

// withUser runs against the active account's store namespace and fails
// when nobody is logged in.
func withUser(run func(store *service.KeyedStore, user *model.UserAccount) error) error {
	return withDB(func(sqldb *sql.DB) error {
		user, err := sessions(sqldb).Current()
		if err != nil {
			return err
		}
		if user == nil {
			return service.ErrNotLoggedIn
		}
		return run(service.NewKeyedStore(sqldb), user)
	})
}

func optionalInt(flagSet bool, value int) *int {
	if !flagSet {
		return nil
	}
	return &value
}

func optionalFloat(flagSet bool, value float64) *float64 {
	if !flagSet {
		return nil
	}
	return &value
}

func parseDayFlag(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
}
