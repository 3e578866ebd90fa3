package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/biashara-ai/advisor/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection: sqlite serializes writers anyway, and it keeps
	// ":memory:" databases from splitting across pool connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			message_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			structured_payload TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			session_id TEXT PRIMARY KEY,
			capital_available TEXT,
			location_county TEXT,
			location_type TEXT NOT NULL DEFAULT 'unknown',
			time_commitment TEXT NOT NULL DEFAULT 'unknown',
			skills TEXT,
			interests TEXT,
			risk_tolerance TEXT,
			selected_business TEXT,
			conversation_stage TEXT NOT NULL DEFAULT 'discovery',
			updated_at DATETIME NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// EnsureSession upserts the session row.
func (s *SQLiteStore) EnsureSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, created_at) VALUES (?, ?)
		 ON CONFLICT(session_id) DO NOTHING`,
		sessionID, time.Now().UTC())
	return err
}

// AppendMessage persists a message, stamping it with the current time.
func (s *SQLiteStore) AppendMessage(ctx context.Context, msg *domain.Message) error {
	msg.CreatedAt = time.Now().UTC()

	var payload sql.NullString
	if len(msg.StructuredPayload) > 0 {
		payload = sql.NullString{String: string(msg.StructuredPayload), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (message_id, session_id, role, content, structured_payload, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		msg.MessageID, msg.SessionID, msg.Role, msg.Content, payload, msg.CreatedAt)
	return err
}

// Messages retrieves all messages for a session in append order. The rowid
// tiebreak keeps same-timestamp appends in insertion order.
func (s *SQLiteStore) Messages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, session_id, role, content, structured_payload, created_at
		 FROM messages WHERE session_id = ? ORDER BY created_at ASC, rowid ASC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var payload sql.NullString
		if err := rows.Scan(&msg.MessageID, &msg.SessionID, &msg.Role, &msg.Content, &payload, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if payload.Valid {
			msg.StructuredPayload = []byte(payload.String)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// GetProfile retrieves the profile row, or nil if absent.
func (s *SQLiteStore) GetProfile(ctx context.Context, sessionID string) (*domain.Profile, error) {
	var p domain.Profile
	var capital, county, skills, interests, risk, selected sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, capital_available, location_county, location_type, time_commitment,
		        skills, interests, risk_tolerance, selected_business, conversation_stage, updated_at
		 FROM profiles WHERE session_id = ?`,
		sessionID).Scan(&p.SessionID, &capital, &county, &p.LocationType, &p.TimeCommitment,
		&skills, &interests, &risk, &selected, &p.ConversationStage, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.CapitalAvailable = capital.String
	p.LocationCounty = county.String
	p.Skills = skills.String
	p.Interests = interests.String
	p.RiskTolerance = risk.String
	p.SelectedBusiness = selected.String
	return &p, nil
}

// CreateProfile inserts a profile row.
func (s *SQLiteStore) CreateProfile(ctx context.Context, p *domain.Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (session_id, capital_available, location_county, location_type, time_commitment,
		                       skills, interests, risk_tolerance, selected_business, conversation_stage, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.SessionID, p.CapitalAvailable, p.LocationCounty, p.LocationType, p.TimeCommitment,
		p.Skills, p.Interests, p.RiskTolerance, p.SelectedBusiness, p.ConversationStage, p.UpdatedAt)
	return err
}

// profileColumns maps recognized field names to columns. Keys double as the
// wire-level field names accepted by profile updates.
var profileColumns = map[string]string{
	"capital_available":  "capital_available",
	"location_county":    "location_county",
	"location_type":      "location_type",
	"time_commitment":    "time_commitment",
	"skills":             "skills",
	"interests":          "interests",
	"risk_tolerance":     "risk_tolerance",
	"selected_business":  "selected_business",
	"conversation_stage": "conversation_stage",
}

// UpdateProfileFields overwrites only the supplied columns in one statement.
func (s *SQLiteStore) UpdateProfileFields(ctx context.Context, sessionID string, fields map[string]string, updatedAt time.Time) error {
	if len(fields) == 0 {
		return nil
	}

	sets := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+2)
	for name, value := range fields {
		col, ok := profileColumns[name]
		if !ok {
			return fmt.Errorf("unrecognized profile field: %s", name)
		}
		sets = append(sets, col+" = ?")
		args = append(args, value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, sessionID)

	query := fmt.Sprintf("UPDATE profiles SET %s WHERE session_id = ?", strings.Join(sets, ", "))
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// Reset deletes all messages and the profile row for a session.
func (s *SQLiteStore) Reset(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}
