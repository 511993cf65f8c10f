package gormstore

import (
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// RoomModel строка таблицы rooms
type RoomModel struct {
	ID         string  `gorm:"primaryKey;size:64"`
	Number     string  `gorm:"size:32"`
	PropertyID string  `gorm:"size:64;index"`
	Type       string  `gorm:"size:64"`
	Status     string  `gorm:"size:32"`
	Price      float64 `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (RoomModel) TableName() string { return "rooms" }

// BookingModel строка таблицы bookings
// created_at приходит из источника данных, поэтому автозаполнение отключено
type BookingModel struct {
	ID         string    `gorm:"primaryKey;size:64"`
	RoomID     string    `gorm:"size:64;index"`
	PropertyID string    `gorm:"size:64"`
	CheckIn    time.Time `gorm:"index"`
	CheckOut   time.Time
	Status     string    `gorm:"size:32"`
	TotalPrice float64   `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"index;autoCreateTime:false"`
}

func (BookingModel) TableName() string { return "bookings" }

func (m RoomModel) toDomain() *domain.Room {
	return &domain.Room{
		ID:         m.ID,
		Number:     m.Number,
		PropertyID: m.PropertyID,
		Type:       m.Type,
		Status:     domain.RoomStatus(m.Status),
		Price:      m.Price,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func roomFromDomain(r *domain.Room) RoomModel {
	return RoomModel{
		ID:         r.ID,
		Number:     r.Number,
		PropertyID: r.PropertyID,
		Type:       r.Type,
		Status:     string(r.Status),
		Price:      r.Price,
		CreatedAt:  r.CreatedAt.UTC(),
		UpdatedAt:  r.UpdatedAt.UTC(),
	}
}

func (m BookingModel) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		RoomID:     m.RoomID,
		PropertyID: m.PropertyID,
		CheckIn:    m.CheckIn.UTC(),
		CheckOut:   m.CheckOut.UTC(),
		Status:     domain.NormalizeBookingStatus(m.Status),
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

func bookingFromDomain(b *domain.Booking) BookingModel {
	return BookingModel{
		ID:         b.ID,
		RoomID:     b.RoomID,
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn.UTC(),
		CheckOut:   b.CheckOut.UTC(),
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt.UTC(),
	}
}
