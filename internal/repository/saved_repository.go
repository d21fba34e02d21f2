package repository

import (
	"context"
	"time"

	"pricescout/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SavedProductRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSavedProductRepository(db *pgxpool.Pool, logger *zap.Logger) *SavedProductRepository {
	return &SavedProductRepository{
		db:     db,
		logger: logger,
	}
}

const savedColumns = "id, user_id, name, url, price, currency, image_url, store, notes, created_at, updated_at"

func (r *SavedProductRepository) Create(ctx context.Context, p *models.SavedProduct) error {
	query := squirrel.Insert("saved_products").
		Columns("id", "user_id", "name", "url", "price", "currency", "image_url", "store", "notes", "created_at", "updated_at").
		Values(p.ID, p.UserID, p.Name, p.URL, p.Price, p.Currency, p.ImageURL, p.Store, p.Notes, p.CreatedAt, p.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SavedProductRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SavedProduct, error) {
	query := squirrel.Select(savedColumns).
		From("saved_products").
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

	var products []*models.SavedProduct
	for rows.Next() {
		var p models.SavedProduct
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.URL, &p.Price, &p.Currency,
			&p.ImageURL, &p.Store, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

func (r *SavedProductRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SavedProduct, error) {
	query := squirrel.Select(savedColumns).
		From("saved_products").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p models.SavedProduct
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.UserID, &p.Name, &p.URL, &p.Price, &p.Currency,
		&p.ImageURL, &p.Store, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdateNotes changes the one mutable field of a saved product. Returns the
// number of rows touched so callers can distinguish "not found" from success.
func (r *SavedProductRepository) UpdateNotes(ctx context.Context, userID, id uuid.UUID, notes string) (int64, error) {
	query := squirrel.Update("saved_products").
		Set("notes", notes).
		Set("updated_at", time.Now()).
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

func (r *SavedProductRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	query := squirrel.Delete("saved_products").
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
