package repository

import (
	"database/sql"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
)

// IChatRepository defines the contract for chat message database operations.
type IChatRepository interface {
	Create(msg *model.ChatMessage) error
	Recent(userID, limit int) ([]*model.ChatMessage, error)
	History(userID, limit int) ([]*model.ChatMessage, error)
	Clear(userID int) error
}

type ChatRepository struct {
	DB *sql.DB
}

func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) Create(msg *model.ChatMessage) error {
	query := `INSERT INTO chat_messages (user_id, role, message, context) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, msg.UserID, msg.Role, msg.Message, msg.Context).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create chat message query")
		return err
	}
	return nil
}

// Recent returns the newest messages in chronological order, for use as
// conversation context.
func (r *ChatRepository) Recent(userID, limit int) ([]*model.ChatMessage, error) {
	query := `SELECT id, user_id, role, message, context, created_at FROM (
	            SELECT id, user_id, role, message, context, created_at
	            FROM chat_messages WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
	          ) recent ORDER BY created_at ASC`
	return r.query(query, userID, limit)
}

// History returns the oldest messages first, capped at limit.
func (r *ChatRepository) History(userID, limit int) ([]*model.ChatMessage, error) {
	query := `SELECT id, user_id, role, message, context, created_at
	          FROM chat_messages WHERE user_id = $1 ORDER BY created_at ASC LIMIT $2`
	return r.query(query, userID, limit)
}

func (r *ChatRepository) query(query string, args ...any) ([]*model.ChatMessage, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute chat messages query")
		return nil, err
	}
	defer rows.Close()

	msgs := []*model.ChatMessage{}
	for rows.Next() {
		m := &model.ChatMessage{}
		var context sql.NullString
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Message, &context, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Context = context.String
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *ChatRepository) Clear(userID int) error {
	_, err := r.DB.Exec(`DELETE FROM chat_messages WHERE user_id = $1`, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute clear chat history query")
	}
	return err
}
