package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/storage"
)

func (h *Handler) ListVehicles(c echo.Context) error {
	f, err := vehicleFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	vehicles, err := h.vehicleSvc.List(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// PublicVehicles is the unauthenticated catalog for the website. It
// only ever shows vehicles whose availability flag is on.
func (h *Handler) PublicVehicles(c echo.Context) error {
	f, err := vehicleFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.OnlyAvailable = true
	vehicles, err := h.vehicleSvc.List(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) CreateVehicle(c echo.Context) error {
	var req model.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v, err := h.vehicleSvc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *Handler) GetVehicle(c echo.Context) error {
	v, err := h.vehicleSvc.Get(c.Request().Context(), c.Param("vehicleUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) UpdateVehicle(c echo.Context) error {
	var req model.UpdateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v, err := h.vehicleSvc.Update(c.Request().Context(), c.Param("vehicleUid"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteVehicle(c echo.Context) error {
	if err := h.vehicleSvc.Delete(c.Request().Context(), c.Param("vehicleUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListVehicleImages(c echo.Context) error {
	v, err := h.vehicleSvc.Get(c.Request().Context(), c.Param("vehicleUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, v.Images)
}

func (h *Handler) UploadVehicleImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	if file.Size > storage.MaxImageSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image is too large")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var isPrimary bool
	if p := c.FormValue("isPrimary"); p != "" {
		if isPrimary, err = strconv.ParseBool(p); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("isPrimary is invalid"))
		}
	}

	img, err := h.vehicleSvc.UploadImage(c.Request().Context(), c.Param("vehicleUid"), file.Filename, data, isPrimary)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, img)
}

func (h *Handler) DeleteVehicleImage(c echo.Context) error {
	imageID, err := strconv.Atoi(c.Param("imageID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("imageID is invalid"))
	}
	if err := h.vehicleSvc.DeleteImage(c.Request().Context(), c.Param("vehicleUid"), imageID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func vehicleFilter(c echo.Context) (model.VehicleFilter, error) {
	f := model.VehicleFilter{
		Category:     c.QueryParam("category"),
		Transmission: c.QueryParam("transmission"),
		Status:       model.VehicleStatus(c.QueryParam("status")),
		Search:       c.QueryParam("search"),
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
	if onlyParam := c.QueryParam("onlyAvailable"); onlyParam != "" {
		if f.OnlyAvailable, err = strconv.ParseBool(onlyParam); err != nil {
			return f, errors.New("onlyAvailable is invalid")
		}
	}
	return f, nil
}
