// Package reservation passes booking reads and writes through to the
// backend, validating new bookings locally first.
package reservation

import (
	"context"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/validation"

	"go.uber.org/zap"
)

const msgIncomplete = "예약 정보를 모두 입력해주세요."

type Backend interface {
	GetReservationSettings(ctx context.Context) (*backend.ReservationSettings, error)
	ListReservationServices(ctx context.Context) ([]backend.ReservationService, error)
	ListStaff(ctx context.Context, serviceID *int64) ([]backend.Staff, error)
	AvailableDates(ctx context.Context, params backend.AvailabilityParams) ([]string, error)
	AvailableSlots(ctx context.Context, params backend.AvailabilityParams) ([]backend.TimeSlot, error)
	CreateReservation(ctx context.Context, cred backend.Credentials, req backend.CreateReservationRequest) (*backend.ReservationCreated, error)
	ListReservations(ctx context.Context, cred backend.Credentials, status string) ([]backend.Reservation, error)
	CancelReservation(ctx context.Context, cred backend.Credentials, reservationNumber, reason string) (*backend.Reservation, error)
}

// Form is the booking request as submitted by the visitor.
type Form struct {
	ServiceID       int64  `json:"service_id" validate:"required,gt=0"`
	StaffID         *int64 `json:"staff_id,omitempty"`
	ReservationDate string `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" validate:"required,datetime=15:04"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	CustomerEmail   string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerMemo    string `json:"customer_memo,omitempty" validate:"max=500"`
}

var formMessages = validation.Messages{
	"service_id":                "서비스를 선택해주세요.",
	"reservation_date.required": "예약 날짜를 선택해주세요.",
	"reservation_date.datetime": "예약 날짜 형식이 올바르지 않습니다.",
	"start_time.required":       "예약 시간을 선택해주세요.",
	"start_time.datetime":       "예약 시간 형식이 올바르지 않습니다.",
	"customer_name":             "예약자 이름을 입력해주세요.",
	"customer_phone":            "예약자 연락처를 입력해주세요.",
	"customer_email":            "올바른 이메일 형식이 아닙니다.",
	"customer_memo":             "요청사항은 500자 이내로 입력해주세요.",
}

func (f Form) normalize() Form {
	f.ReservationDate = strings.TrimSpace(f.ReservationDate)
	f.StartTime = strings.TrimSpace(f.StartTime)
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	f.CustomerPhone = strings.TrimSpace(f.CustomerPhone)
	f.CustomerEmail = strings.TrimSpace(f.CustomerEmail)
	f.CustomerMemo = strings.TrimSpace(f.CustomerMemo)
	return f
}

type Service struct {
	backend  Backend
	settings *cache.Cache[string, *backend.ReservationSettings]
	services *cache.Cache[string, []backend.ReservationService]
}

func NewService(b Backend) *Service {
	return &Service{
		backend:  b,
		settings: cache.New[string, *backend.ReservationSettings](1, cache.ReservationTTL),
		services: cache.New[string, []backend.ReservationService](1, cache.ReservationTTL),
	}
}

func (s *Service) Settings(ctx context.Context) (*backend.ReservationSettings, error) {
	v, _, err := s.settings.GetOrLoad("settings", func() (*backend.ReservationSettings, error) {
		return s.backend.GetReservationSettings(ctx)
	})
	return v, err
}

func (s *Service) Services(ctx context.Context) ([]backend.ReservationService, error) {
	v, _, err := s.services.GetOrLoad("services", func() ([]backend.ReservationService, error) {
		return s.backend.ListReservationServices(ctx)
	})
	return v, err
}

func (s *Service) Staff(ctx context.Context, serviceID *int64) ([]backend.Staff, error) {
	return s.backend.ListStaff(ctx, serviceID)
}

func (s *Service) AvailableDates(ctx context.Context, serviceID int64, staffID *int64, month string) ([]string, error) {
	if serviceID <= 0 {
		return nil, &validation.Error{Message: formMessages["service_id"], Fields: map[string]string{"service_id": formMessages["service_id"]}}
	}
	return s.backend.AvailableDates(ctx, backend.AvailabilityParams{ServiceID: serviceID, StaffID: staffID, Month: month})
}

func (s *Service) AvailableSlots(ctx context.Context, serviceID int64, staffID *int64, date string) ([]backend.TimeSlot, error) {
	if serviceID <= 0 {
		return nil, &validation.Error{Message: formMessages["service_id"], Fields: map[string]string{"service_id": formMessages["service_id"]}}
	}
	return s.backend.AvailableSlots(ctx, backend.AvailabilityParams{ServiceID: serviceID, StaffID: staffID, Date: date})
}

// Create books a slot. An incomplete form never reaches the backend.
func (s *Service) Create(ctx context.Context, cred backend.Credentials, form Form) (*backend.ReservationCreated, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateReservation"),
	)

	form = form.normalize()
	if err := validation.Check(form, msgIncomplete, formMessages); err != nil {
		log.Debug("reservation form invalid", zap.Error(err))
		return nil, err
	}

	res, err := s.backend.CreateReservation(ctx, cred, backend.CreateReservationRequest{
		ServiceID:       form.ServiceID,
		StaffID:         form.StaffID,
		ReservationDate: form.ReservationDate,
		StartTime:       form.StartTime,
		CustomerName:    form.CustomerName,
		CustomerPhone:   form.CustomerPhone,
		CustomerEmail:   form.CustomerEmail,
		CustomerMemo:    form.CustomerMemo,
	})
	if err != nil {
		log.Warn("create reservation failed", zap.Error(err))
		return nil, err
	}

	log.Info("reservation created",
		zap.String("reservation_number", res.Reservation.ReservationNumber),
		zap.Bool("requires_payment", res.RequiresPayment),
	)
	return res, nil
}

func (s *Service) List(ctx context.Context, cred backend.Credentials, status string) ([]backend.Reservation, error) {
	return s.backend.ListReservations(ctx, cred, status)
}

func (s *Service) Cancel(ctx context.Context, cred backend.Credentials, reservationNumber, reason string) (*backend.Reservation, error) {
	res, err := s.backend.CancelReservation(ctx, cred, reservationNumber, strings.TrimSpace(reason))
	if err != nil {
		logger.FromCtx(ctx).Warn("cancel reservation failed",
			zap.String("layer", "service"),
			zap.String("reservation_number", reservationNumber),
			zap.Error(err),
		)
		return nil, err
	}
	return res, nil
}
