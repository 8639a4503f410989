package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/Vladisof/FootballSingularity/internal/game"
)

// SQLiteStore implements Store on a single-file SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates, if needed) the save database at path.
// Use ":memory:" for an ephemeral store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Save writes the individual keys and the JSON blob in one transaction.
func (s *SQLiteStore) Save(data game.SaveData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value")
	if err != nil {
		return err
	}
	defer stmt.Close()

	put := func(key, value string) error {
		_, err := stmt.Exec(key, value)
		return err
	}

	if err := put(keySaveBlob, string(blob)); err != nil {
		return err
	}
	if err := put(keyHasSave, "1"); err != nil {
		return err
	}
	if err := put(keySavedAt, data.SavedAt); err != nil {
		return err
	}
	if err := put(keyMoney, strconv.FormatFloat(data.Money, 'f', -1, 64)); err != nil {
		return err
	}
	for team, rep := range data.Reputations {
		if err := put(prefixRep+team, strconv.FormatFloat(rep, 'f', -1, 64)); err != nil {
			return err
		}
	}
	for name, level := range data.UpgradeLevels {
		if err := put(prefixLevel+name, strconv.Itoa(level)); err != nil {
			return err
		}
	}
	if err := put(keyUnlocked, strings.Join(data.UnlockedDNA, ",")); err != nil {
		return err
	}

	return tx.Commit()
}

// Load returns the last save, reporting false when no save exists yet.
func (s *SQLiteStore) Load() (game.SaveData, bool, error) {
	var flag string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", keyHasSave).Scan(&flag)
	if err == sql.ErrNoRows {
		return game.SaveData{}, false, nil
	}
	if err != nil {
		return game.SaveData{}, false, err
	}

	var blob string
	if err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", keySaveBlob).Scan(&blob); err != nil {
		return game.SaveData{}, false, fmt.Errorf("read save blob: %w", err)
	}

	var data game.SaveData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return game.SaveData{}, false, fmt.Errorf("decode save data: %w", err)
	}
	return data, true, nil
}
