package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// BookingForm is the shape both booking forms share. It carries no totals:
// prices are recomputed server-side and a client cannot submit them at all.
type BookingForm struct {
	VehicleID       int32         `json:"vehicle_id" validate:"required,gt=0"`
	StartDate       string        `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string        `json:"end_date" validate:"required,datetime=2006-01-02"`
	PickupLocation  string        `json:"pickup_location" validate:"required,max=80"`
	DropoffLocation string        `json:"dropoff_location" validate:"required,max=80"`
	Services        []ServiceForm `json:"services" validate:"dive"`
	CustomerName    string        `json:"customer_name" validate:"required,min=2,max=120"`
	CustomerEmail   string        `json:"customer_email" validate:"required,email,max=254"`
	CustomerPhone   string        `json:"customer_phone" validate:"omitempty,max=30"`
	Notes           string        `json:"notes" validate:"omitempty,max=2000"`
}

// ServiceForm is the submitted snapshot of a selected add-on.
type ServiceForm struct {
	ID              string `json:"id" validate:"required,max=60"`
	Name            string `json:"name" validate:"required,max=120"`
	PricePerDay     int64  `json:"price_per_day" validate:"gte=0"`
	IsIncluded      bool   `json:"is_included"`
	QuantityCapable bool   `json:"quantity_capable"`
	Quantity        int32  `json:"quantity" validate:"gte=0,lte=10"`
}

type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{validate: validator.New()}
}

// ValidatePublic enforces the full end-user rules, including a strictly
// positive date range. The pricing layer would tolerate an inverted range
// (1-day floor); this boundary is what keeps such ranges out of persistence.
func (v *BookingValidator) ValidatePublic(form *BookingForm) error {
	errs := v.structErrors(form)
	errs = append(errs, dateRangeErrors(form.StartDate, form.EndDate, true)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateAdmin relaxes the range rule: staff may record same-day bookings.
// Customer contact fields stay optional for walk-ins.
func (v *BookingValidator) ValidateAdmin(form *BookingForm) error {
	var errs ValidationErrors
	for _, e := range v.structErrors(form) {
		if e.Field == "customer_email" || e.Field == "customer_phone" {
			continue
		}
		errs = append(errs, e)
	}
	errs = append(errs, dateRangeErrors(form.StartDate, form.EndDate, false)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *BookingValidator) structErrors(form *BookingForm) ValidationErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   fieldName(fe),
				Message: messageFor(fe),
			})
		}
		return errs
	}
	return ValidationErrors{{Field: "form", Message: err.Error()}}
}

func dateRangeErrors(startDate, endDate string, strict bool) ValidationErrors {
	start, err1 := time.Parse("2006-01-02", startDate)
	end, err2 := time.Parse("2006-01-02", endDate)
	if err1 != nil || err2 != nil {
		// Malformed dates already reported by the datetime tag.
		return nil
	}
	if strict && !end.After(start) {
		return ValidationErrors{{Field: "end_date", Message: "must be after start date"}}
	}
	if !strict && end.Before(start) {
		return ValidationErrors{{Field: "end_date", Message: "must not be before start date"}}
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	// Report the JSON field names the client actually sent.
	switch fe.Field() {
	case "VehicleID":
		return "vehicle_id"
	case "StartDate":
		return "start_date"
	case "EndDate":
		return "end_date"
	case "PickupLocation":
		return "pickup_location"
	case "DropoffLocation":
		return "dropoff_location"
	case "CustomerName":
		return "customer_name"
	case "CustomerEmail":
		return "customer_email"
	case "CustomerPhone":
		return "customer_phone"
	case "Notes":
		return "notes"
	case "ID":
		return "services.id"
	case "Name":
		return "services.name"
	case "PricePerDay":
		return "services.price_per_day"
	case "Quantity":
		return "services.quantity"
	default:
		return strings.ToLower(fe.Field())
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a yyyy-mm-dd date"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
