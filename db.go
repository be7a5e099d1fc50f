package hexpixel

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Direction records which way an image went through the codec.
type Direction string

const (
	// Encoded marks an image that was written.
	Encoded Direction = "encode"
	// Decoded marks an image that was read.
	Decoded Direction = "decode"
)

// Record is one entry in the history database.
type Record struct {
	SHA1      string
	Path      string
	Width     int
	Height    int
	Pixels    int
	Direction Direction
	Payload   string
	Created   time.Time
}

// HistoryDB keeps a log of every image written or read.
type HistoryDB struct {
	db *sql.DB
}

// NewHistoryDB opens or creates the sqlite database at file.
func NewHistoryDB(file string) (*HistoryDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, pixels INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS event (id INTEGER PRIMARY KEY NOT NULL, image_id INTEGER NOT NULL, direction TEXT NOT NULL, path TEXT NOT NULL, payload TEXT NOT NULL, created INTEGER NOT NULL, FOREIGN KEY(image_id) REFERENCES image(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &HistoryDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *HistoryDB) Close() error {
	return db.db.Close()
}

func (db *HistoryDB) addImage(sha string, width, height, pixels int) (int64, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM image WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO image (sha1, width, height, pixels) VALUES (?, ?, ?, ?)", sha, width, height, pixels)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Add stores rec, reusing the image row if the same image was seen before.
// A zero Created time is replaced with the current time.
func (db *HistoryDB) Add(rec Record) error {
	id, err := db.addImage(rec.SHA1, rec.Width, rec.Height, rec.Pixels)
	if err != nil {
		return err
	}

	if rec.Created.IsZero() {
		rec.Created = time.Now()
	}

	if _, err := db.db.Exec("INSERT INTO event (image_id, direction, path, payload, created) VALUES (?, ?, ?, ?, ?)", id, string(rec.Direction), rec.Path, rec.Payload, rec.Created.UnixNano()); err != nil {
		return err
	}
	return nil
}

const selectRecords = "SELECT i.sha1, i.width, i.height, i.pixels, e.direction, e.path, e.payload, e.created FROM event AS e JOIN image AS i ON e.image_id = i.id"

func (db *HistoryDB) query(query string, args ...interface{}) ([]Record, error) {
	rows, err := db.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var direction string
		var created int64
		if err := rows.Scan(&rec.SHA1, &rec.Width, &rec.Height, &rec.Pixels, &direction, &rec.Path, &rec.Payload, &created); err != nil {
			return nil, err
		}
		rec.Direction = Direction(direction)
		rec.Created = time.Unix(0, created)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// History returns up to limit records, newest first. A limit of zero or
// less returns everything.
func (db *HistoryDB) History(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	return db.query(selectRecords+" ORDER BY e.id DESC LIMIT ?", limit)
}

// FindBySHA1 returns every record for the image with the given hash, oldest
// first.
func (db *HistoryDB) FindBySHA1(sha string) ([]Record, error) {
	return db.query(selectRecords+" WHERE i.sha1 = ? ORDER BY e.id", sha)
}
