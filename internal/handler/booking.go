package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/booking"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/auth"
)

const dateLayout = "2006-01-02"

func (h *Handler) ListBookings(c echo.Context) error {
	f, err := bookingFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookings, err := h.bookingSvc.List(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c echo.Context) error {
	b, err := h.bookingSvc.Get(c.Request().Context(), c.Param("bookingUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	b, err := h.bookingSvc.Create(ctx, req, auth.Username(ctx))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// CreateWebsiteBooking is the public entry point. The request lands as
// a pending booking and never blocks other customers until staff
// confirm it.
func (h *Handler) CreateWebsiteBooking(c echo.Context) error {
	var req model.WebsiteBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.bookingSvc.CreateFromWebsite(c.Request().Context(), req)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) QuoteBooking(c echo.Context) error {
	var req model.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	quote, err := h.bookingSvc.Quote(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, quote)
}

func (h *Handler) VehicleAvailability(c echo.Context) error {
	req := model.QuoteRequest{
		VehicleUid: c.Param("vehicleUid"),
		StartDate:  c.QueryParam("startDate"),
		StartTime:  c.QueryParam("startTime"),
		EndDate:    c.QueryParam("endDate"),
		EndTime:    c.QueryParam("endTime"),
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.bookingSvc.CheckAvailability(c.Request().Context(), req, c.QueryParam("excludeBookingUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ConfirmBooking(c echo.Context) error {
	ctx := c.Request().Context()
	b, err := h.bookingSvc.Confirm(ctx, c.Param("bookingUid"), auth.Username(ctx))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) PickupBooking(c echo.Context) error {
	ctx := c.Request().Context()
	b, err := h.bookingSvc.Pickup(ctx, c.Param("bookingUid"), auth.Username(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ReturnBooking(c echo.Context) error {
	var req model.ReturnBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	b, err := h.bookingSvc.Return(ctx, c.Param("bookingUid"), auth.Username(ctx), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	ctx := c.Request().Context()
	b, err := h.bookingSvc.Cancel(ctx, c.Param("bookingUid"), auth.Username(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) UpdateBookingDates(c echo.Context) error {
	var req model.UpdateBookingDatesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.bookingSvc.UpdateDates(c.Request().Context(), c.Param("bookingUid"), req)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) BookingContract(c echo.Context) error {
	bookingUid := c.Param("bookingUid")
	pdf, err := h.bookingSvc.Contract(c.Request().Context(), bookingUid)
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.pdf", bookingUid))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// bookingError keeps the conflicting bookings in the response so the
// operator sees what is blocking the window.
func bookingError(c echo.Context, err error) error {
	var conflictErr *booking.ConflictError
	if errors.As(err, &conflictErr) {
		return c.JSON(http.StatusConflict, model.ConflictResponse{
			Message:   err.Error(),
			Conflicts: conflictErr.Conflicts,
		})
	}
	return httpError(err)
}

func bookingFilter(c echo.Context) (model.BookingFilter, error) {
	f := model.BookingFilter{
		VehicleUid:  c.QueryParam("vehicleUid"),
		CustomerUid: c.QueryParam("customerUid"),
		Status:      model.BookingStatus(c.QueryParam("status")),
	}
	var err error
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if f.Page, err = strconv.Atoi(pageParam); err != nil {
			return f, errors.New("page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if f.PageSize, err = strconv.Atoi(sizeParam); err != nil {
			return f, errors.New("size is invalid")
		}
	}
	if fromParam := c.QueryParam("from"); fromParam != "" {
		from, err := time.Parse(dateLayout, fromParam)
		if err != nil {
			return f, errors.New("from is invalid")
		}
		f.From = &from
	}
	if toParam := c.QueryParam("to"); toParam != "" {
		to, err := time.Parse(dateLayout, toParam)
		if err != nil {
			return f, errors.New("to is invalid")
		}
		f.To = &to
	}
	return f, nil
}
