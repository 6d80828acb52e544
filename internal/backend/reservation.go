package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront-gateway/internal/money"
)

type ReservationSettings struct {
	BookingWindowDays  int    `json:"booking_window_days"`
	MinAdvanceHours    int    `json:"min_advance_hours"`
	CancellationHours  int    `json:"cancellation_hours"`
	RequiresPayment    bool   `json:"requires_payment"`
	Notice             string `json:"notice,omitempty"`
	AllowStaffSelect   bool   `json:"allow_staff_selection"`
	SlotIntervalMinute int    `json:"slot_interval_minutes"`
}

type ReservationService struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description string       `json:"description,omitempty"`
	Duration    int          `json:"duration"`
	Price       money.Amount `json:"price"`
	Deposit     money.Amount `json:"deposit"`
}

type Staff struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type AvailabilityParams struct {
	ServiceID int64
	StaffID   *int64
	Month     string
	Date      string
}

type CreateReservationRequest struct {
	ServiceID       int64  `json:"service_id"`
	StaffID         *int64 `json:"staff_id,omitempty"`
	ReservationDate string `json:"reservation_date"`
	StartTime       string `json:"start_time"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerMemo    string `json:"customer_memo,omitempty"`
}

type Reservation struct {
	ID                 int64               `json:"id"`
	ReservationNumber  string              `json:"reservation_number"`
	Status             string              `json:"status"`
	StatusLabel        string              `json:"status_label,omitempty"`
	PaymentStatus      string              `json:"payment_status,omitempty"`
	PaymentStatusLabel string              `json:"payment_status_label,omitempty"`
	ReservationDate    string              `json:"reservation_date"`
	StartTime          string              `json:"start_time"`
	EndTime            string              `json:"end_time,omitempty"`
	Service            *ReservationService `json:"service,omitempty"`
	Staff              *Staff              `json:"staff,omitempty"`
	Deposit            money.Amount        `json:"deposit"`
}

type ReservationCreated struct {
	Reservation     Reservation  `json:"reservation"`
	RequiresPayment bool         `json:"requires_payment"`
	Deposit         money.Amount `json:"deposit"`
}

func (c *Client) GetReservationSettings(ctx context.Context) (*ReservationSettings, error) {
	var s ReservationSettings
	if _, err := c.do(ctx, "reservation.settings", http.MethodGet, "/reservation/settings", Credentials{}, nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) ListReservationServices(ctx context.Context) ([]ReservationService, error) {
	var services []ReservationService
	if _, err := c.do(ctx, "reservation.services", http.MethodGet, "/reservation/services", Credentials{}, nil, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) ListStaff(ctx context.Context, serviceID *int64) ([]Staff, error) {
	q := url.Values{}
	if serviceID != nil {
		q.Set("service_id", strconv.FormatInt(*serviceID, 10))
	}

	var staff []Staff
	if _, err := c.do(ctx, "reservation.staff", http.MethodGet, "/reservation/staff", Credentials{}, q, nil, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (c *Client) AvailableDates(ctx context.Context, params AvailabilityParams) ([]string, error) {
	var dates []string
	if _, err := c.do(ctx, "reservation.available_dates", http.MethodGet, "/reservation/available-dates", Credentials{}, availabilityQuery(params), nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (c *Client) AvailableSlots(ctx context.Context, params AvailabilityParams) ([]TimeSlot, error) {
	var slots []TimeSlot
	if _, err := c.do(ctx, "reservation.available_slots", http.MethodGet, "/reservation/available-slots", Credentials{}, availabilityQuery(params), nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) CreateReservation(ctx context.Context, cred Credentials, req CreateReservationRequest) (*ReservationCreated, error) {
	var res ReservationCreated
	if _, err := c.do(ctx, "reservation.create", http.MethodPost, "/reservations", cred, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListReservations(ctx context.Context, cred Credentials, status string) ([]Reservation, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var list []Reservation
	if _, err := c.do(ctx, "reservation.list", http.MethodGet, "/reservations", cred, q, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CancelReservation(ctx context.Context, cred Credentials, reservationNumber, reason string) (*Reservation, error) {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}

	var res Reservation
	path := "/reservations/" + url.PathEscape(reservationNumber) + "/cancel"
	if _, err := c.do(ctx, "reservation.cancel", http.MethodPost, path, cred, nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func availabilityQuery(p AvailabilityParams) url.Values {
	q := url.Values{}
	q.Set("service_id", strconv.FormatInt(p.ServiceID, 10))
	if p.StaffID != nil {
		q.Set("staff_id", strconv.FormatInt(*p.StaffID, 10))
	}
	if p.Month != "" {
		q.Set("month", p.Month)
	}
	if p.Date != "" {
		q.Set("date", p.Date)
	}
	return q
}
