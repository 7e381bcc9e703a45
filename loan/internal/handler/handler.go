package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
	md "github.com/bookhaven/loan-service/pkg/middleware"
	"github.com/bookhaven/loan-service/pkg/metrics"
	"github.com/bookhaven/loan-service/pkg/validate"
	_ "github.com/bookhaven/loan-service/swagger"
)

const internalReason = "internal error"

type Handler struct {
	loanSvc LoanService
	metrics *metrics.ServerMetrics
	log     *zap.Logger
}

func New(loanSvc LoanService, m *metrics.ServerMetrics, log *zap.Logger) *Handler {
	return &Handler{
		loanSvc: loanSvc,
		metrics: m,
		log:     log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	if h.metrics != nil {
		api.Use(h.metrics.Middleware())
	}

	api.POST("/checkout", h.Checkout)
	api.POST("/returns", h.Return)
	api.POST("/renewals", h.Renew)

	api.GET("/items", h.ListItems)
	api.GET("/items/:itemUid", h.GetItem)
	api.POST("/items/:itemUid/waitlist", h.JoinWaitlist)

	api.GET("/members/:memberUid/loans", h.GetMemberLoans)
	api.POST("/members/:memberUid/loans/:itemUid/progress", h.MarkProgress)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Checkout(c echo.Context) error {
	var req model.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	order, err := h.loanSvc.Checkout(c.Request().Context(), req)
	if err != nil {
		status, reason := h.failure("checkout", err)
		return c.JSON(status, model.CheckoutResponse{Success: false, Reason: reason})
	}
	return c.JSON(http.StatusOK, model.CheckoutResponse{Success: true, Order: &order})
}

func (h *Handler) Return(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	returnedAt, err := h.loanSvc.Return(c.Request().Context(), req)
	if err != nil {
		status, reason := h.failure("return", err)
		return c.JSON(status, model.ReturnResponse{Success: false, Reason: reason})
	}
	return c.JSON(http.StatusOK, model.ReturnResponse{Success: true, ReturnedAt: &returnedAt})
}

func (h *Handler) Renew(c echo.Context) error {
	var req model.RenewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	newDueDate, err := h.loanSvc.Renew(c.Request().Context(), req)
	if err != nil {
		status, reason := h.failure("renew", err)
		return c.JSON(status, model.RenewResponse{Success: false, Reason: reason})
	}
	return c.JSON(http.StatusOK, model.RenewResponse{Success: true, NewDueDate: &newDueDate})
}

func (h *Handler) GetItem(c echo.Context) error {
	item, err := h.loanSvc.GetItem(c.Request().Context(), c.Param("itemUid"))
	if err != nil {
		return h.httpError("get item", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) ListItems(c echo.Context) error {
	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}

	items, err := h.loanSvc.ListItems(c.Request().Context(), c.QueryParam("category"), page, size)
	if err != nil {
		return h.httpError("list items", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) JoinWaitlist(c echo.Context) error {
	var req model.JoinWaitlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.loanSvc.JoinWaitlist(c.Request().Context(), c.Param("itemUid"), req); err != nil {
		return h.httpError("join waitlist", err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) GetMemberLoans(c echo.Context) error {
	orders, err := h.loanSvc.GetMemberLoans(c.Request().Context(), c.Param("memberUid"))
	if err != nil {
		return h.httpError("member loans", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) MarkProgress(c echo.Context) error {
	if err := h.loanSvc.MarkLoanStarted(c.Request().Context(), c.Param("memberUid"), c.Param("itemUid")); err != nil {
		return h.httpError("mark progress", err)
	}
	return c.NoContent(http.StatusOK)
}

// statusFor maps the loan error taxonomy to HTTP statuses; unknown errors are
// infrastructure failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrMemberNotFound),
		errors.Is(err, errs.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrDuplicateActiveLoan),
		errors.Is(err, errs.ErrAlreadyWaitlisted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrLimitExceeded),
		errors.Is(err, errs.ErrMinHoldingPeriod):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// failure resolves the status and client-facing reason for an error. Taxonomy
// errors carry their own message; anything else is an infrastructure failure
// whose detail stays in the log.
func (h *Handler) failure(op string, err error) (int, string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error(op, zap.Error(err))
		return status, internalReason
	}
	return status, err.Error()
}

func (h *Handler) httpError(op string, err error) *echo.HTTPError {
	status, reason := h.failure(op, err)
	return echo.NewHTTPError(status, reason)
}
