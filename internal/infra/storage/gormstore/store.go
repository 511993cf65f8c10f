package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

var (
	// ErrQuery возвращается при ошибке чтения
	ErrQuery = errors.New("gormstore: query failed")

	// ErrWrite возвращается при ошибке записи
	ErrWrite = errors.New("gormstore: write failed")
)

const upsertBatchSize = 500

// Store хранилище номеров и бронирований на gorm
// Работает с PostgreSQL и SQLite, схема совпадает со схемой squirrel-репозиториев
type Store struct {
	db *gorm.DB
}

// New создает хранилище поверх открытого соединения gorm
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate создает или обновляет схему таблиц rooms и bookings
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&RoomModel{}, &BookingModel{}); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	// Индекс под регистронезависимый фильтр по статусу
	ddl := "CREATE INDEX IF NOT EXISTS idx_bookings_status_lower ON bookings (LOWER(status))"
	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("create status index: %w", err)
	}

	return nil
}

// ListRooms получает все номера
func (s *Store) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	var models []RoomModel
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%w: ListRooms: %v", ErrQuery, err)
	}

	rooms := make([]*domain.Room, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, m.toDomain())
	}
	return rooms, nil
}

// QueryBookings получает бронирования по фильтру, используя индексы таблицы
func (s *Store) QueryBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	q := s.db.WithContext(ctx).Model(&BookingModel{})

	if filter.CheckInFrom != nil {
		q = q.Where("check_in >= ?", filter.CheckInFrom.UTC())
	}
	if filter.CheckInBefore != nil {
		q = q.Where("check_in < ?", filter.CheckInBefore.UTC())
	}
	if filter.Status != nil {
		q = q.Where("LOWER(status) = ?", strings.ToLower(string(*filter.Status)))
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", filter.CreatedFrom.UTC())
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at < ?", filter.CreatedBefore.UTC())
	}

	var models []BookingModel
	if err := q.Order("check_in ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%w: QueryBookings: %v", ErrQuery, err)
	}

	return toDomainBookings(models), nil
}

// ListAllBookings получает все бронирования
func (s *Store) ListAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	var models []BookingModel
	if err := s.db.WithContext(ctx).Order("check_in ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%w: ListAllBookings: %v", ErrQuery, err)
	}

	return toDomainBookings(models), nil
}

// UpsertRooms вставляет номера, существующие записи обновляются по id
func (s *Store) UpsertRooms(ctx context.Context, rooms []*domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	models := make([]RoomModel, 0, len(rooms))
	for _, r := range rooms {
		models = append(models, roomFromDomain(r))
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"number", "property_id", "type", "status", "price", "updated_at"}),
	}).CreateInBatches(&models, upsertBatchSize).Error
	if err != nil {
		return fmt.Errorf("%w: UpsertRooms: %v", ErrWrite, err)
	}
	return nil
}

// UpsertBookings вставляет бронирования, существующие записи обновляются по id
func (s *Store) UpsertBookings(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	models := make([]BookingModel, 0, len(bookings))
	for _, b := range bookings {
		models = append(models, bookingFromDomain(b))
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"room_id", "property_id", "check_in", "check_out", "status", "total_price", "created_at"}),
	}).CreateInBatches(&models, upsertBatchSize).Error
	if err != nil {
		return fmt.Errorf("%w: UpsertBookings: %v", ErrWrite, err)
	}
	return nil
}

func toDomainBookings(models []BookingModel) []*domain.Booking {
	bookings := make([]*domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, m.toDomain())
	}
	return bookings
}
