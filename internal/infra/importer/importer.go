package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

var (
	// ErrDecode возвращается при некорректном JSON выгрузки
	ErrDecode = errors.New("importer: failed to decode dump")

	// ErrInvalidRecord возвращается для записи без обязательных полей
	ErrInvalidRecord = errors.New("importer: invalid record")
)

// Writer хранилище, принимающее импортированные данные
type Writer interface {
	UpsertRooms(ctx context.Context, rooms []*domain.Room) error
	UpsertBookings(ctx context.Context, bookings []*domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dump выгрузка коллекций rooms и bookings
// Записи декодируются по одной, чтобы битая запись не ломала весь импорт
type Dump struct {
	Rooms    []json.RawMessage `json:"rooms"`
	Bookings []json.RawMessage `json:"bookings"`
}

// RoomRecord документ номера
type RoomRecord struct {
	ID         string    `json:"id"`
	Number     string    `json:"roomNumber"`
	PropertyID string    `json:"propertyId"`
	LodgeID    string    `json:"lodgeId"`
	Type       string    `json:"roomType"`
	Status     string    `json:"status"`
	Price      float64   `json:"price"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// BookingRecord документ бронирования
type BookingRecord struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"roomId"`
	PropertyID string    `json:"propertyId"`
	LodgeID    string    `json:"lodgeId"`
	CheckIn    Timestamp `json:"checkIn"`
	CheckOut   Timestamp `json:"checkOut"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  Timestamp `json:"createdAt"`
}

// Stats итог импорта
type Stats struct {
	Rooms           int
	Bookings        int
	SkippedRooms    int
	SkippedBookings int
}

// Importer загружает выгрузку документной БД в хранилище
type Importer struct {
	writer Writer
	logger Logger
}

// New создает импортер
func New(writer Writer, logger Logger) *Importer {
	return &Importer{writer: writer, logger: logger}
}

// Import читает выгрузку и сохраняет номера и бронирования
// Записи, которые не удалось разобрать или без обязательных полей,
// пропускаются с предупреждением
func (im *Importer) Import(ctx context.Context, r io.Reader) (*Stats, error) {
	var dump Dump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	stats := &Stats{}

	rooms := make([]*domain.Room, 0, len(dump.Rooms))
	for i, raw := range dump.Rooms {
		room, err := decodeRoom(raw)
		if err != nil {
			im.logger.Warn("Import: skipping room #%d: %v", i, err)
			stats.SkippedRooms++
			continue
		}
		rooms = append(rooms, room)
	}

	bookings := make([]*domain.Booking, 0, len(dump.Bookings))
	for i, raw := range dump.Bookings {
		booking, err := decodeBooking(raw)
		if err != nil {
			im.logger.Warn("Import: skipping booking #%d: %v", i, err)
			stats.SkippedBookings++
			continue
		}
		bookings = append(bookings, booking)
	}

	if err := im.writer.UpsertRooms(ctx, rooms); err != nil {
		return nil, fmt.Errorf("import rooms: %w", err)
	}
	if err := im.writer.UpsertBookings(ctx, bookings); err != nil {
		return nil, fmt.Errorf("import bookings: %w", err)
	}

	stats.Rooms = len(rooms)
	stats.Bookings = len(bookings)

	im.logger.Info("Import: rooms=%d (skipped %d), bookings=%d (skipped %d)",
		stats.Rooms, stats.SkippedRooms, stats.Bookings, stats.SkippedBookings)

	return stats, nil
}

func decodeRoom(raw json.RawMessage) (*domain.Room, error) {
	var rec RoomRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return rec.toDomain()
}

func decodeBooking(raw json.RawMessage) (*domain.Booking, error) {
	var rec BookingRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return rec.toDomain()
}

func (r RoomRecord) toDomain() (*domain.Room, error) {
	if strings.TrimSpace(r.ID) == "" {
		return nil, fmt.Errorf("%w: room without id", ErrInvalidRecord)
	}

	return &domain.Room{
		ID:         r.ID,
		Number:     r.Number,
		PropertyID: firstNonEmpty(r.PropertyID, r.LodgeID),
		Type:       r.Type,
		Status:     domain.RoomStatus(strings.ToLower(r.Status)),
		Price:      r.Price,
		CreatedAt:  r.CreatedAt.Time,
		UpdatedAt:  r.UpdatedAt.Time,
	}, nil
}

func (b BookingRecord) toDomain() (*domain.Booking, error) {
	switch {
	case strings.TrimSpace(b.ID) == "":
		return nil, fmt.Errorf("%w: booking without id", ErrInvalidRecord)
	case b.CheckIn.IsZero() || b.CheckOut.IsZero():
		return nil, fmt.Errorf("%w: booking %s without stay dates", ErrInvalidRecord, b.ID)
	case b.CheckOut.Before(b.CheckIn.Time):
		return nil, fmt.Errorf("%w: booking %s checks out before check-in", ErrInvalidRecord, b.ID)
	}

	return &domain.Booking{
		ID:         b.ID,
		RoomID:     b.RoomID,
		PropertyID: firstNonEmpty(b.PropertyID, b.LodgeID),
		CheckIn:    b.CheckIn.Time,
		CheckOut:   b.CheckOut.Time,
		Status:     domain.NormalizeBookingStatus(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt.Time,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
