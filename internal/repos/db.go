package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
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
	// Seed demo users and products if the DB is empty (idempotent; safe to
	// run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Admin capability is a separate lookup, resolved once at login.
CREATE TABLE IF NOT EXISTS admins(
  user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  is_admin INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  brand TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  category TEXT NOT NULL DEFAULT '',
  condition TEXT NOT NULL DEFAULT 'used',
  description TEXT NOT NULL DEFAULT '',
  features TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  delivery TEXT NOT NULL DEFAULT '',
  available INTEGER NOT NULL DEFAULT 1,
  main_image_url TEXT NOT NULL,
  images_json TEXT NOT NULL DEFAULT '[]',
  user_id TEXT REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_title      ON products(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_condition  ON products(condition);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures one USER and one ADMIN exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Hash string
		Admin                 bool
	}
	mk := func(id, email, name, raw string, admin bool) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Hash: string(h), Admin: admin}
	}

	users := []u{
		mk("u-claire", "claire@bagatelle.test", "Claire", "Passw0rd!", false),
		mk("u-admin", "admin@bagatelle.test", "Admin", "Passw0rd!", true),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash)
			VALUES(?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash); err != nil {
			return err
		}
		if x.Admin {
			if _, err := tx.Exec(`
				INSERT INTO admins(user_id) VALUES(?)
				ON CONFLICT(user_id) DO NOTHING
			`, x.ID); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,title,brand,price,quantity,category,condition,description,features,location,delivery,available,main_image_url,images_json,user_id) VALUES
	  ('sac-cuir-001','Sac cabas cuir','Atelier Voss',89.00,2,'bags','used','Soft leather tote, lightly worn.','Cotton lining; inner zip pocket','Lyon','Shipped within 3 days',1,'/media/seed/sac-cuir-001.jpg','[]','u-admin'),
	  ('sac-toile-001','Sac seau toile','Maison Brun',45.50,1,'bags','new','Canvas bucket bag, never used.','Drawstring closure','Paris','Pickup or shipping',1,'/media/seed/sac-toile-001.jpg','[]','u-admin'),
	  ('ceinture-001','Ceinture tressée','Atelier Voss',19.90,4,'accessories','used','Braided belt, small scuffs.','','Lyon','Shipped within 3 days',0,'/media/seed/ceinture-001.jpg','[]','u-admin')`)

	return tx.Commit()
}
