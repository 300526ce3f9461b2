package database

import (
	"database/sql"
	"fmt"

	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
	"github.com/dwitvliet/coffee-chats/internal/domain/entity"
)

type questionRepo struct {
	db dbConn
}

func newQuestionRepo(db dbConn) contract.QuestionRepo {
	return &questionRepo{db: db}
}

func (r *questionRepo) Create(question *entity.Question) error {
	query := `
		INSERT INTO icebreaker_questions (question_text, is_active, times_used)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, question.Text, question.IsActive, question.TimesUsed)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	question.ID = id
	return nil
}

// GetLeastUsedActive returns the active question used the fewest times,
// giving a round-robin rotation over the question pool. Returns nil
// when no active question exists.
func (r *questionRepo) GetLeastUsedActive() (*entity.Question, error) {
	question := &entity.Question{}
	query := `
		SELECT id, question_text, is_active, times_used
		FROM icebreaker_questions
		WHERE is_active = 1
		ORDER BY times_used ASC, id ASC
		LIMIT 1
	`

	err := r.db.QueryRow(query).Scan(
		&question.ID,
		&question.Text,
		&question.IsActive,
		&question.TimesUsed,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return question, nil
}

func (r *questionRepo) IncrementTimesUsed(questionID int64) error {
	query := `UPDATE icebreaker_questions SET times_used = times_used + 1 WHERE id = ?`

	_, err := r.db.Exec(query, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment question usage: %w", err)
	}

	return nil
}
