package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"intakebot/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get loads the session for a user
func (r *SessionRepo) Get(userID int64) (*domain.Session, error) {
	query := `
		SELECT chat_id, display_name, language, contract_number, form
		FROM sessions WHERE user_id = $1
	`

	session := &domain.Session{UserID: userID}
	var contractNumber sql.NullString
	var formRaw []byte

	err := r.db.QueryRow(query, userID).Scan(
		&session.ChatID,
		&session.DisplayName,
		&session.Language,
		&contractNumber,
		&formRaw,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	session.ContractNumber = contractNumber.String
	if len(formRaw) > 0 {
		if err := json.Unmarshal(formRaw, &session.Form); err != nil {
			return nil, fmt.Errorf("failed to decode form: %w", err)
		}
	}

	return session, nil
}

// Create inserts a session if the user has none yet
func (r *SessionRepo) Create(session *domain.Session) error {
	query := `
		INSERT INTO sessions (user_id, chat_id, display_name, language)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, session.UserID, session.ChatID, session.DisplayName, session.Language)
	return err
}

// Update replaces the stored session row
func (r *SessionRepo) Update(session *domain.Session) error {
	var formRaw []byte
	if session.Form != nil {
		var err error
		formRaw, err = json.Marshal(session.Form)
		if err != nil {
			return fmt.Errorf("failed to encode form: %w", err)
		}
	}

	query := `
		UPDATE sessions
		SET chat_id = $2, display_name = $3, language = $4, contract_number = $5, form = $6
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query,
		session.UserID,
		session.ChatID,
		session.DisplayName,
		session.Language,
		nullableString(session.ContractNumber),
		formRaw,
	)
	return err
}

// Delete removes the session for a user
func (r *SessionRepo) Delete(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
