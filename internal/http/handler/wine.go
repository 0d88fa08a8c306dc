package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"wineapi/internal/logger"
	"wineapi/internal/service"
)

// deleteResponse acknowledges a successful delete.
type deleteResponse struct {
	Message string `json:"message"`
}

// CreateWineRecord classifies and stores a wine sample.
//
// @Summary  Create a wine record
// @Tags     wine-records
// @Accept   json
// @Produce  json
// @Param    sample  body      model.WineSample  true  "Wine sample"
// @Success  200     {object}  model.WineRecord
// @Failure  422     {object}  errorPayload
// @Failure  500     {object}  errorPayload
// @Router   /wine-records [post]
func CreateWineRecord(svc service.WineService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sample, err := parseWineSample(c)
		if err != nil {
			return writeRequestError(c, err)
		}
		rec, err := svc.Create(c.UserContext(), sample)
		if err != nil {
			return internalError(c, log, "wine_record_create_failed", err)
		}
		log.Info("wine_record_created",
			"request_id", requestIDFromCtx(c),
			"id", rec.ID,
			"classification", string(rec.Classification),
		)
		return c.Status(fiber.StatusOK).JSON(rec)
	}
}

// ListWineRecords returns every stored wine record.
//
// @Summary  List wine records
// @Tags     wine-records
// @Produce  json
// @Success  200  {array}   model.WineRecord
// @Failure  500  {object}  errorPayload
// @Router   /wine-records [get]
func ListWineRecords(svc service.WineService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, log, "wine_record_list_failed", err)
		}
		return c.JSON(items)
	}
}

// UpdateWineRecord replaces a wine record, reclassifying it.
//
// @Summary  Replace a wine record
// @Tags     wine-records
// @Accept   json
// @Produce  json
// @Param    id      path      int               true  "Wine record ID"
// @Param    sample  body      model.WineSample  true  "Wine sample"
// @Success  200     {object}  model.WineRecord
// @Failure  404     {object}  errorPayload
// @Failure  422     {object}  errorPayload
// @Failure  500     {object}  errorPayload
// @Router   /wine-records/{id} [put]
func UpdateWineRecord(svc service.WineService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_ID", service.ErrInvalidID.Error())
		}
		sample, err := parseWineSample(c)
		if err != nil {
			return writeRequestError(c, err)
		}
		rec, err := svc.Update(c.UserContext(), id, sample)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "wine record not found")
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_ID", err.Error())
			}
			return internalError(c, log, "wine_record_update_failed", err)
		}
		log.Info("wine_record_updated",
			"request_id", requestIDFromCtx(c),
			"id", rec.ID,
			"classification", string(rec.Classification),
		)
		return c.JSON(rec)
	}
}

// DeleteWineRecord removes a wine record.
//
// @Summary  Delete a wine record
// @Tags     wine-records
// @Produce  json
// @Param    id   path      int  true  "Wine record ID"
// @Success  200  {object}  deleteResponse
// @Failure  404  {object}  errorPayload
// @Failure  422  {object}  errorPayload
// @Failure  500  {object}  errorPayload
// @Router   /wine-records/{id} [delete]
func DeleteWineRecord(svc service.WineService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_ID", service.ErrInvalidID.Error())
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "wine record not found")
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_ID", err.Error())
			}
			return internalError(c, log, "wine_record_delete_failed", err)
		}
		log.Info("wine_record_deleted", "request_id", requestIDFromCtx(c), "id", id)
		return c.JSON(deleteResponse{Message: "wine record deleted"})
	}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func writeRequestError(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return writeErrorDetails(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", reqErr.message, reqErr.details)
	}
	return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", "request validation failed")
}

// internalError logs err and answers with a generic 500.
func internalError(c *fiber.Ctx, log *logger.Logger, event string, err error) error {
	log.Error(event, "request_id", requestIDFromCtx(c), "error", err.Error())
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
