package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/psqlbuilder"
)

// Repository репозиторий для чтения номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRooms получает все номера
func (r *Repository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"number",
		"property_id",
		"type",
		"status",
		"price",
		"created_at",
		"updated_at",
	).
		From("rooms").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var (
			room                            domain.Room
			number, propertyID, typ, status sql.NullString
			price                           sql.NullFloat64
			createdAt, updatedAt            sql.NullTime
		)

		err := rows.Scan(
			&room.ID,
			&number,
			&propertyID,
			&typ,
			&status,
			&price,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRooms - scan room: %v", ErrScanRow, err)
		}

		room.Number = number.String
		room.PropertyID = propertyID.String
		room.Type = typ.String
		room.Status = domain.RoomStatus(status.String)
		room.Price = price.Float64
		room.CreatedAt = createdAt.Time.UTC()
		room.UpdatedAt = updatedAt.Time.UTC()

		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRooms - rows iteration: %v", ErrScanRow, err)
	}

	return rooms, nil
}
