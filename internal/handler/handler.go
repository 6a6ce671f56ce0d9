package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/auth"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/validate"
	_ "github.com/YAHYA280/RMQ-BackEnd-sub000/swagger"
)

type Handler struct {
	authSvc     AuthService
	vehicleSvc  VehicleService
	customerSvc CustomerService
	bookingSvc  BookingService
	statsSvc    StatsService
	log         *zap.Logger
}

func New(authSvc AuthService, vehicleSvc VehicleService, customerSvc CustomerService, bookingSvc BookingService, statsSvc StatsService, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:     authSvc,
		vehicleSvc:  vehicleSvc,
		customerSvc: customerSvc,
		bookingSvc:  bookingSvc,
		statsSvc:    statsSvc,
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS   = 10
		publicRPS = 5
		apiRPS    = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.Validator = validate.NewCustomValidator()

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	public := e.Group("/api/public",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(publicRPS),
	)
	public.GET("/vehicles", h.PublicVehicles)
	public.GET("/vehicles/:vehicleUid/availability", h.VehicleAvailability)
	public.POST("/bookings", h.CreateWebsiteBooking)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	api.POST("/auth/login", h.Login)
	api = api.Group("", JwtAuthentication)
	api.GET("/auth/me", h.Me)
	api.POST("/auth/register", h.Register, adminOnly)

	api.GET("/vehicles", h.ListVehicles)
	api.POST("/vehicles", h.CreateVehicle)
	api.GET("/vehicles/:vehicleUid", h.GetVehicle)
	api.PATCH("/vehicles/:vehicleUid", h.UpdateVehicle)
	api.DELETE("/vehicles/:vehicleUid", h.DeleteVehicle, adminOnly)
	api.GET("/vehicles/:vehicleUid/availability", h.VehicleAvailability)
	api.GET("/vehicles/:vehicleUid/images", h.ListVehicleImages)
	api.POST("/vehicles/:vehicleUid/images", h.UploadVehicleImage)
	api.DELETE("/vehicles/:vehicleUid/images/:imageID", h.DeleteVehicleImage)

	api.GET("/customers", h.ListCustomers)
	api.POST("/customers", h.CreateCustomer)
	api.GET("/customers/:customerUid", h.GetCustomer)
	api.PATCH("/customers/:customerUid", h.UpdateCustomer)
	api.DELETE("/customers/:customerUid", h.DeleteCustomer, adminOnly)

	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)
	api.POST("/bookings/quote", h.QuoteBooking)
	api.GET("/bookings/:bookingUid", h.GetBooking)
	api.POST("/bookings/:bookingUid/confirm", h.ConfirmBooking)
	api.POST("/bookings/:bookingUid/pickup", h.PickupBooking)
	api.POST("/bookings/:bookingUid/return", h.ReturnBooking)
	api.POST("/bookings/:bookingUid/cancel", h.CancelBooking)
	api.PUT("/bookings/:bookingUid/dates", h.UpdateBookingDates)
	api.GET("/bookings/:bookingUid/contract", h.BookingContract)

	api.GET("/stats/dashboard", h.Dashboard)
	api.GET("/stats/events", h.RecentEvents)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.authSvc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.authSvc.Me(ctx, auth.Username(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrInvalidInterval),
		errors.Is(err, errs.ErrTooShort),
		errors.Is(err, errs.ErrUnsupportedMedia):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrStillConflicting),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVehicleUnavailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
