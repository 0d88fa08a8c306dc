package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"wineapi/internal/model"
)

// wineSampleRequest is the wire form of model.WineSample. Pointer fields let
// validation tell a missing field apart from a zero value.
type wineSampleRequest struct {
	Name               *string  `json:"name" validate:"required"`
	Supplier           *string  `json:"supplier" validate:"required"`
	IdentityDocument   *string  `json:"identity_document" validate:"required,min=11,max=20"`
	FixedAcidity       *float64 `json:"fixed_acidity" validate:"required"`
	VolatileAcidity    *float64 `json:"volatile_acidity" validate:"required"`
	CitricAcid         *float64 `json:"citric_acid" validate:"required"`
	ResidualSugar      *float64 `json:"residual_sugar" validate:"required"`
	Chlorides          *float64 `json:"chlorides" validate:"required"`
	FreeSulfurDioxide  *float64 `json:"free_sulfur_dioxide" validate:"required"`
	TotalSulfurDioxide *float64 `json:"total_sulfur_dioxide" validate:"required"`
	Density            *float64 `json:"density" validate:"required"`
	PH                 *float64 `json:"ph" validate:"required"`
	Sulphates          *float64 `json:"sulphates" validate:"required"`
	Alcohol            *float64 `json:"alcohol" validate:"required"`
}

func (r *wineSampleRequest) toSample() model.WineSample {
	return model.WineSample{
		Name:               *r.Name,
		Supplier:           *r.Supplier,
		IdentityDocument:   *r.IdentityDocument,
		FixedAcidity:       *r.FixedAcidity,
		VolatileAcidity:    *r.VolatileAcidity,
		CitricAcid:         *r.CitricAcid,
		ResidualSugar:      *r.ResidualSugar,
		Chlorides:          *r.Chlorides,
		FreeSulfurDioxide:  *r.FreeSulfurDioxide,
		TotalSulfurDioxide: *r.TotalSulfurDioxide,
		Density:            *r.Density,
		PH:                 *r.PH,
		Sulphates:          *r.Sulphates,
		Alcohol:            *r.Alcohol,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requestError is a client error carrying field-level details.
type requestError struct {
	message string
	details []fieldError
}

func (e *requestError) Error() string { return e.message }

// parseWineSample decodes and validates a JSON request body. Any failure is a *requestError.
// Only application/json is accepted; field names are the JSON ones.
func parseWineSample(c *fiber.Ctx) (model.WineSample, error) {
	if !c.Is("json") {
		return model.WineSample{}, &requestError{message: "content type must be application/json"}
	}
	var req wineSampleRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return model.WineSample{}, decodeError(err)
	}
	if err := validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]fieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, fieldError{Field: fe.Field(), Message: describe(fe)})
			}
			return model.WineSample{}, &requestError{message: "request validation failed", details: details}
		}
		return model.WineSample{}, &requestError{message: "request validation failed"}
	}
	return req.toSample(), nil
}

func decodeError(err error) *requestError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return &requestError{message: "request body must be a JSON object"}
		}
		return &requestError{
			message: "request validation failed",
			details: []fieldError{{Field: field, Message: fmt.Sprintf("must be of type %s", jsonType(typeErr.Type))}},
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &requestError{message: "request body is not valid JSON"}
	}
	return &requestError{message: "request body must be a JSON object"}
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "number"
	case reflect.String:
		return "string"
	default:
		return t.Kind().String()
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
