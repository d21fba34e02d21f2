package repository

import (
	"context"

	"pricescout/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// HistoryRepository persists SearchRecords. Every query is filtered by
// user_id so one user can never read or delete another user's rows,
// independent of any database-side policy.
type HistoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHistoryRepository(db *pgxpool.Pool, logger *zap.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

const historyColumns = "id, user_id, query, input_kind, store_type, result_count, cheapest_price, created_at"

func (r *HistoryRepository) Create(ctx context.Context, rec *models.SearchRecord) error {
	query := squirrel.Insert("search_history").
		Columns("id", "user_id", "query", "input_kind", "store_type", "result_count", "cheapest_price", "created_at").
		Values(rec.ID, rec.UserID, rec.Query, rec.InputKind, rec.StoreType, rec.ResultCount, rec.CheapestPrice, rec.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SearchRecord, error) {
	query := squirrel.Select(historyColumns).
		From("search_history").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.SearchRecord
	for rows.Next() {
		var rec models.SearchRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Query, &rec.InputKind, &rec.StoreType,
			&rec.ResultCount, &rec.CheapestPrice, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

func (r *HistoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SearchRecord, error) {
	query := squirrel.Select(historyColumns).
		From("search_history").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rec models.SearchRecord
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rec.ID, &rec.UserID, &rec.Query, &rec.InputKind, &rec.StoreType,
		&rec.ResultCount, &rec.CheapestPrice, &rec.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// DeleteByID removes one record owned by the user. Returns the number of rows
// removed (0 when the record does not exist or belongs to someone else).
func (r *HistoryRepository) DeleteByID(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	query := squirrel.Delete("search_history").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteAllByUser removes every record owned by the user and returns the count.
func (r *HistoryRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("search_history").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
