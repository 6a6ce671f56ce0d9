package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

func (h *Handler) ListCustomers(c echo.Context) error {
	f := model.CustomerFilter{Search: c.QueryParam("search")}
	var err error
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if f.Page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if f.PageSize, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}

	customers, err := h.customerSvc.List(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	var req model.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	customer, err := h.customerSvc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, customer)
}

func (h *Handler) GetCustomer(c echo.Context) error {
	customer, err := h.customerSvc.Get(c.Request().Context(), c.Param("customerUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	var req model.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	customer, err := h.customerSvc.Update(c.Request().Context(), c.Param("customerUid"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(c echo.Context) error {
	if err := h.customerSvc.Delete(c.Request().Context(), c.Param("customerUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
