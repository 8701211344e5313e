// Package records is the durable store for recognition history: one row per
// recognition call, scoped to the user who submitted the image.
package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	_ "modernc.org/sqlite"
)

// Record is one durable recognition record.
type Record struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"userId"`
	ImageURL           string    `json:"imageUrl"`
	RecognitionResult  string    `json:"recognitionResult"`
	ScientificName     string    `json:"scientificName"`
	CommonName         string    `json:"commonName"`
	ConservationStatus string    `json:"conservationStatus"`
	Characteristics    string    `json:"characteristics"`
	Habitat            string    `json:"habitat"`
	Distribution       string    `json:"distribution"`
	SizeRange          string    `json:"sizeRange"`
	Diet               string    `json:"diet"`
	Description        string    `json:"description"`
	Classification     string    `json:"classification"` // JSON object of taxonomic ranks
	Confidence         float64   `json:"confidence"`
	Status             int       `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Page is one page of records plus the total match count.
type Page struct {
	Records []Record `json:"records"`
	Total   int64    `json:"total"`
	Current int      `json:"current"`
	Size    int      `json:"size"`
}

// Store provides access to recognition records in SQLite.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS recognition_records (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id             INTEGER NOT NULL,
	image_url           TEXT NOT NULL DEFAULT '',
	recognition_result  TEXT NOT NULL DEFAULT '',
	scientific_name     TEXT NOT NULL DEFAULT '',
	common_name         TEXT NOT NULL DEFAULT '',
	conservation_status TEXT NOT NULL DEFAULT '',
	characteristics     TEXT NOT NULL DEFAULT '',
	habitat             TEXT NOT NULL DEFAULT '',
	distribution        TEXT NOT NULL DEFAULT '',
	size_range          TEXT NOT NULL DEFAULT '',
	diet                TEXT NOT NULL DEFAULT '',
	description         TEXT NOT NULL DEFAULT '',
	classification      TEXT NOT NULL DEFAULT '{}',
	confidence          REAL NOT NULL DEFAULT 0,
	status              INTEGER NOT NULL DEFAULT 1,
	created_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_recognition_records_user ON recognition_records(user_id, created_at DESC);
`

// Open opens (creating if needed) the records database at path. The initial
// ping retries briefly to ride out SQLITE_BUSY from a concurrently starting
// process.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = retry.Do(
		func() error { return db.Ping() },
		retry.Attempts(5),
		retry.Delay(200*time.Millisecond),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("database not reachable: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const recordColumns = `id, user_id, image_url, recognition_result, scientific_name,
	common_name, conservation_status, characteristics, habitat, distribution,
	size_range, diet, description, classification, confidence, status, created_at`

// Save inserts a record and returns it with the assigned id.
func (s *Store) Save(ctx context.Context, r Record) (Record, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Status == 0 {
		r.Status = 1
	}
	if r.Classification == "" {
		r.Classification = "{}"
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO recognition_records (
			user_id, image_url, recognition_result, scientific_name, common_name,
			conservation_status, characteristics, habitat, distribution, size_range,
			diet, description, classification, confidence, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.ImageURL, r.RecognitionResult, r.ScientificName, r.CommonName,
		r.ConservationStatus, r.Characteristics, r.Habitat, r.Distribution, r.SizeRange,
		r.Diet, r.Description, r.Classification, r.Confidence, r.Status, r.CreatedAt,
	)
	if err != nil {
		return Record{}, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Record{}, fmt.Errorf("failed to read inserted id: %w", err)
	}
	r.ID = id
	return r, nil
}

// GetByID retrieves one record. A missing id returns sql.ErrNoRows.
func (s *Store) GetByID(ctx context.Context, id int64) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM recognition_records WHERE id = ?`, id)
	return scanRecord(row)
}

// List returns one page of a user's records, newest first, optionally
// filtered by keyword against the recognized and scientific names.
func (s *Store) List(ctx context.Context, userID int64, current, size int, keyword string) (Page, error) {
	if current < 1 {
		current = 1
	}
	if size < 1 {
		size = 10
	}

	where, args := userKeywordFilter(userID, keyword)

	var total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recognition_records `+where, args...).Scan(&total)
	if err != nil {
		return Page{}, fmt.Errorf("failed to count records: %w", err)
	}

	query := `SELECT ` + recordColumns + ` FROM recognition_records ` + where +
		` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, append(args, size, (current-1)*size)...)
	if err != nil {
		return Page{}, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	recs, err := collectRecords(rows)
	if err != nil {
		return Page{}, err
	}

	return Page{Records: recs, Total: total, Current: current, Size: size}, nil
}

// ListAll returns every matching record for a user, newest first. Used by
// export, which has no pagination.
func (s *Store) ListAll(ctx context.Context, userID int64, keyword string) ([]Record, error) {
	where, args := userKeywordFilter(userID, keyword)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM recognition_records `+where+
			` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// DeleteBatch removes the given record ids belonging to userID and returns
// how many were deleted. Ids owned by other users are left untouched.
func (s *Store) DeleteBatch(ctx context.Context, userID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(ids)+1)
	args = append(args, userID)
	for _, id := range ids {
		args = append(args, id)
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM recognition_records WHERE user_id = ? AND id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete records: %w", err)
	}
	return res.RowsAffected()
}

func userKeywordFilter(userID int64, keyword string) (string, []any) {
	where := `WHERE user_id = ?`
	args := []any{userID}
	if keyword != "" {
		where += ` AND (recognition_result LIKE ? OR scientific_name LIKE ?)`
		pattern := "%" + keyword + "%"
		args = append(args, pattern, pattern)
	}
	return where, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	err := row.Scan(
		&r.ID, &r.UserID, &r.ImageURL, &r.RecognitionResult, &r.ScientificName,
		&r.CommonName, &r.ConservationStatus, &r.Characteristics, &r.Habitat,
		&r.Distribution, &r.SizeRange, &r.Diet, &r.Description, &r.Classification,
		&r.Confidence, &r.Status, &r.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

func collectRecords(rows *sql.Rows) ([]Record, error) {
	var recs []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return recs, nil
}
