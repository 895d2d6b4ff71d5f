package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a few demo listings if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Card listings. AUTOINCREMENT keeps ids monotonic and never reused for the
-- lifetime of the store.
CREATE TABLE IF NOT EXISTS cards(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  owner_id TEXT NOT NULL,
  card_name TEXT NOT NULL CHECK (length(card_name) > 0),
  set_name TEXT NOT NULL DEFAULT '',
  expansion TEXT NOT NULL DEFAULT '',
  card_number TEXT NOT NULL DEFAULT '',
  condition TEXT NOT NULL CHECK (condition IN
    ('Near Mint','Lightly Played','Moderately Played','Heavily Played','Damaged')),
  foil INTEGER NOT NULL DEFAULT 0,
  language TEXT NOT NULL CHECK (language IN
    ('English','Japanese','Spanish','German','French')),
  trade_value NUMERIC NOT NULL DEFAULT 0 CHECK (trade_value >= 0),
  market_value NUMERIC CHECK (market_value IS NULL OR market_value >= 0),
  images_json TEXT NOT NULL,
  tradeable INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_owner      ON cards(owner_id);
CREATE INDEX IF NOT EXISTS idx_cards_created_at ON cards(created_at);
CREATE INDEX IF NOT EXISTS idx_cards_name       ON cards(LOWER(card_name));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM cards`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo card listings")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO cards
	  (owner_id,card_name,set_name,expansion,card_number,condition,foil,language,
	   trade_value,market_value,images_json,tradeable,created_at) VALUES
	  ('u-demo','Charizard','Base Set','Base','4','Near Mint',1,'English',
	   150.00,180.00,'["seed-charizard.jpg"]',1,'2024-01-02T10:00:00Z'),
	  ('u-demo','Blastoise','Base Set','Base','2','Lightly Played',0,'English',
	   60.00,72.50,'["seed-blastoise.jpg"]',1,'2024-01-03T10:00:00Z'),
	  ('u-demo','Pikachu','Jungle','Base','60','Moderately Played',0,'Japanese',
	   5.00,NULL,'["seed-pikachu.jpg"]',0,'2024-01-04T10:00:00Z')`)

	return tx.Commit()
}
