package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/handler/dto"
)

const dateLayout = "2006-01-02"

type BookingSvc interface {
	CheckAvailability(ctx context.Context, venueID int64, date time.Time, start, end domain.TimeOfDay, excludeBookingID *int64) (*domain.Availability, error)
	Create(ctx context.Context, input *domain.BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id int64, input *domain.BookingInput) error
	SetStatus(ctx context.Context, id int64, status string) (*domain.Booking, error)
	Get(ctx context.Context, id int64) (*domain.BookingWithVenue, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithVenue, error)
}

type VenueSvc interface {
	Create(ctx context.Context, input *domain.VenueInput) (*domain.Venue, error)
	Update(ctx context.Context, id int64, input *domain.VenueInput) (*domain.Venue, error)
	ListAvailable(ctx context.Context) ([]*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

type ReportSvc interface {
	VenueUtilization(ctx context.Context, from, to time.Time) ([]domain.VenueUtilization, error)
	EventTypeSummary(ctx context.Context, from, to time.Time) ([]domain.EventTypeSummary, error)
	Calendar(ctx context.Context, from, to time.Time) ([]*domain.BookingWithVenue, error)
}

type AuthSvc interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	RequestVerification(ctx context.Context, email string) (string, error)
	VerifyCode(ctx context.Context, codeID, code string) (string, *domain.User, error)
}

type Handler struct {
	bookingService BookingSvc
	venueService   VenueSvc
	reportService  ReportSvc
	authService    AuthSvc
}

func NewHandler(bookingService BookingSvc, venueService VenueSvc, reportService ReportSvc, authService AuthSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		venueService:   venueService,
		reportService:  reportService,
		authService:    authService,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *Handler) RequestVerification(c *ginext.Context) {
	var req dto.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	codeID, err := h.authService.RequestVerification(c.Request.Context(), req.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerificationIssuedResponse{CodeID: codeID, Email: req.Email})
}

func (h *Handler) VerifyCode(c *ginext.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.VerifyCode(c.Request.Context(), req.CodeID, req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Venues

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVenueResponses(venues))
}

func (h *Handler) AdminListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVenueResponses(venues))
}

func (h *Handler) CreateVenue(c *ginext.Context) {
	input, ok := h.bindVenue(c)
	if !ok {
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) UpdateVenue(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	input, ok := h.bindVenue(c)
	if !ok {
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

// Availability

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.bookingService.CheckAvailability(
		c.Request.Context(), req.VenueID, date, start, end, req.ExcludeBookingID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.AvailabilityResponse{Available: result.Available}
	if !result.Available {
		resp.Conflicts = dto.ToBookingResponses(result.Conflicts)
		resp.Message = "Venue is already booked for the selected time slot"
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	input, ok := h.bindBooking(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookingCreatedResponse{BookingID: booking.ID})
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter, err := parseBookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingWithVenueResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingWithVenueResponse(booking))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	input, ok := h.bindBooking(c)
	if !ok {
		return
	}

	if err := h.bookingService.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.bookingService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Calendar and reports

func (h *Handler) Calendar(c *ginext.Context) {
	from, to, err := dateRange(c, "start", "end")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.reportService.Calendar(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	events := make([]dto.CalendarEventResponse, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, dto.ToCalendarEventResponse(b))
	}

	c.JSON(http.StatusOK, events)
}

func (h *Handler) Reports(c *ginext.Context) {
	from, to, err := dateRange(c, "startDate", "endDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	switch c.Query("reportType") {
	case "venue-utilization":
		report, err := h.reportService.VenueUtilization(c.Request.Context(), from, to)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)

	case "event-types":
		report, err := h.reportService.EventTypeSummary(c.Request.Context(), from, to)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)

	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid report type"})
	}
}

// Helpers

func (h *Handler) bindBooking(c *ginext.Context) (*domain.BookingInput, bool) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	eventType, err := domain.ParseEventType(req.EventType)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	date, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid eventDate format, expected YYYY-MM-DD"})
		return nil, false
	}

	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	return &domain.BookingInput{
		VenueID:         req.VenueID,
		ClientName:      req.ClientName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		EventType:       eventType,
		EventDate:       date,
		StartTime:       start,
		EndTime:         end,
		ExpectedGuests:  req.ExpectedGuests,
		SpecialRequests: req.SpecialRequests,
	}, true
}

func (h *Handler) bindVenue(c *ginext.Context) (*domain.VenueInput, bool) {
	var req dto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	input := &domain.VenueInput{
		Name:       req.Name,
		Capacity:   req.Capacity,
		HourlyRate: req.HourlyRate,
	}

	if req.Status != "" {
		status, err := domain.ParseVenueStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return nil, false
		}
		input.Status = status
	}

	return input, true
}

func pathID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func dateRange(c *ginext.Context, fromParam, toParam string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, c.Query(fromParam))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid " + fromParam + ", expected YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, c.Query(toParam))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid " + toParam + ", expected YYYY-MM-DD")
	}
	return from, to, nil
}

func parseBookingFilter(c *ginext.Context) (domain.BookingFilter, error) {
	var filter domain.BookingFilter

	if v := c.Query("startDate"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, errors.New("invalid startDate, expected YYYY-MM-DD")
		}
		filter.FromDate = &d
	}
	if v := c.Query("endDate"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, errors.New("invalid endDate, expected YYYY-MM-DD")
		}
		filter.ToDate = &d
	}
	if v := c.Query("venueId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return filter, errors.New("invalid venueId")
		}
		filter.VenueID = &id
	}
	if v := c.Query("status"); v != "" {
		status, err := domain.ParseBookingStatus(v)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

func toVenueResponses(venues []*domain.Venue) []dto.VenueResponse {
	res := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		res = append(res, dto.ToVenueResponse(v))
	}
	return res
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	if conflict, ok := domain.AsConflict(err); ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:     "Venue is not available for the selected time slot",
			Conflicts: dto.ToBookingResponses(conflict.Conflicts),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrVenueUnavailable),
		errors.Is(err, domain.ErrCodeNotFound),
		errors.Is(err, domain.ErrCodeMismatch):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
