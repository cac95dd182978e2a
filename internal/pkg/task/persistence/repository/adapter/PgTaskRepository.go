package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	task "github.com/Shreya020904/Planner-ui/internal/pkg/task/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
)

type PgTaskRepository struct {
	pool *pgxpool.Pool
}

func NewPgTaskRepository(pool *pgxpool.Pool) *PgTaskRepository {
	return &PgTaskRepository{pool: pool}
}

var _ repository.TaskRepository = (*PgTaskRepository)(nil)

const taskColumns = `id::text, name, task_type, task_date, task_time, status, created_at`

func (r *PgTaskRepository) Create(ctx context.Context, t *task.Task) error {
	if r == nil || r.pool == nil {
		return errors.New("PgTaskRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (name, task_type, task_date, task_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, created_at
	`, t.Name, string(t.Type), t.Date, t.Time, string(t.Status)).Scan(&t.ID, &t.CreatedAt)
	return errors.Wrap(err, "insert task")
}

func (r *PgTaskRepository) List(ctx context.Context) ([]task.Task, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgTaskRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "list tasks")
	}
	defer rows.Close()

	out := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, errors.Wrap(rows.Err(), "list tasks")
}

func (r *PgTaskRepository) UpdateStatus(ctx context.Context, id string, status task.Status) (*task.Task, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgTaskRepository: nil pool")
	}
	// compare as text so malformed ids read as missing rather than failing the cast
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks SET status = $2 WHERE id::text = $1
		RETURNING `+taskColumns, id, string(status))
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrTaskNotFound
	}
	return t, err
}

func scanTask(row pgx.Row) (*task.Task, error) {
	var (
		t              task.Task
		kind, progress string
	)
	if err := row.Scan(&t.ID, &t.Name, &kind, &t.Date, &t.Time, &progress, &t.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "scan task")
	}
	t.Type = task.Type(kind)
	t.Status = task.Status(progress)
	return &t, nil
}
