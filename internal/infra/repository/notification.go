package repository

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/pgconv"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const notificationJobColumns = `id, kind, topic, payload, status, attempts, run_at, last_error, order_id`

const (
	insertNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, status, run_at, order_id)
VALUES ($1, $2, $3, 'queued', $4, $5)
RETURNING id`

	claimNotificationJobByID = `
UPDATE notification_jobs
SET status = 'sending', attempts = attempts + 1, locked_at = $2, updated_at = $2
WHERE id = $1 AND status = 'queued'
RETURNING ` + notificationJobColumns

	// A sending job past its lease belongs to a worker that died mid-send.
	claimDueNotificationJobs = `
UPDATE notification_jobs
SET status = 'sending', attempts = attempts + 1, locked_at = $1, updated_at = $1
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE (status = 'queued' AND run_at <= $1)
       OR (status = 'sending' AND locked_at < $2)
    ORDER BY run_at
    FOR UPDATE SKIP LOCKED
    LIMIT $3
)
RETURNING ` + notificationJobColumns

	markNotificationJobSent = `
UPDATE notification_jobs
SET status = 'sent', locked_at = NULL, last_error = NULL, updated_at = $2
WHERE id = $1`

	rescheduleNotificationJob = `
UPDATE notification_jobs
SET status = 'queued', locked_at = NULL, run_at = $2, last_error = $3, updated_at = now()
WHERE id = $1`

	markNotificationJobFailed = `
UPDATE notification_jobs
SET status = 'failed', locked_at = NULL, last_error = $2, updated_at = $3
WHERE id = $1`
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, job shared.NotificationJob) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertNotificationJob,
		job.Kind,
		job.Topic,
		job.Payload,
		job.RunAt,
		pgconv.UUIDPtrToPgtype(job.OrderID),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}

	return id, nil
}

func (r *NotificationRepository) ClaimByID(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (*shared.NotificationJob, error) {
	job, err := scanNotificationJob(tx.QueryRow(ctx, claimNotificationJobByID, id, now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification job", err)
	}

	return job, nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, lease time.Duration, limit int) ([]*shared.NotificationJob, error) {
	rows, err := tx.Query(ctx, claimDueNotificationJobs, now, now.Add(-lease), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due notification jobs", err)
	}
	defer rows.Close()

	var jobs []*shared.NotificationJob
	for rows.Next() {
		job, err := scanNotificationJob(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}

	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) error {
	if _, err := tx.Exec(ctx, markNotificationJobSent, id, now); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, tx db.DBTX, id uuid.UUID, runAt time.Time, lastError string) error {
	if _, err := tx.Exec(ctx, rescheduleNotificationJob, id, runAt, lastError); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string, now time.Time) error {
	if _, err := tx.Exec(ctx, markNotificationJobFailed, id, lastError, now); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}

func scanNotificationJob(row rowScanner) (*shared.NotificationJob, error) {
	var (
		job       shared.NotificationJob
		lastError pgtype.Text
		orderID   pgtype.UUID
	)
	err := row.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.Status, &job.Attempts, &job.RunAt, &lastError, &orderID)
	if err != nil {
		return nil, err
	}
	job.LastError = pgconv.StringPtrFromPgtype(lastError)
	job.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
	return &job, nil
}
