package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

var _ repository.ChatRepository = (*PgChatRepository)(nil)

// AppendMessage lets the database stamp created_at unless the caller set it.
func (r *PgChatRepository) AppendMessage(ctx context.Context, m chat.Message) (chat.Message, error) {
	if r == nil || r.pool == nil {
		return chat.Message{}, errors.New("PgChatRepository: nil pool")
	}
	var createdAt any
	if !m.CreatedAt.IsZero() {
		createdAt = m.CreatedAt
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat_messages (conversation_id, sender_id, body, created_at)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, clock_timestamp()))
		RETURNING id::text, seq, created_at
	`, string(m.ConversationID), m.SenderID, m.Body, createdAt).Scan(&m.ID, &m.Seq, &m.CreatedAt)
	if err != nil {
		return chat.Message{}, errors.Wrap(err, "insert message")
	}
	return m, nil
}

func (r *PgChatRepository) ListMessages(ctx context.Context, conversationID chat.ConversationID) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, conversation_id, sender_id, body, created_at, seq
		FROM chat_messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC, seq ASC
	`, string(conversationID))
	if err != nil {
		return nil, errors.Wrap(err, "list messages")
	}
	defer rows.Close()

	msgs := make([]chat.Message, 0)
	for rows.Next() {
		var (
			msg  chat.Message
			conv string
		)
		if err := rows.Scan(&msg.ID, &conv, &msg.SenderID, &msg.Body, &msg.CreatedAt, &msg.Seq); err != nil {
			return nil, errors.Wrap(err, "scan message")
		}
		msg.ConversationID = chat.ConversationID(conv)
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list messages")
	}
	return msgs, nil
}
