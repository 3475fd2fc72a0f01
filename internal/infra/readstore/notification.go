package readstore

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

// ListByOrder omits payloads; they carry the code in clear text.
func (s *NotificationReadStore) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]readmodel.NotificationJobRM, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, kind, topic, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE order_id = $1
ORDER BY created_at`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}
	defer rows.Close()

	jobs := []readmodel.NotificationJobRM{}
	for rows.Next() {
		var j readmodel.NotificationJobRM
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.RunAt, &j.Attempts, &j.Status, &j.LastError, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}

	return jobs, nil
}
