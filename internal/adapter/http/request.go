package http

import (
	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

// SubmitTransactionRequest represents the request body for a ledger transaction.
type SubmitTransactionRequest struct {
	// Kind is one of BookPassenger, ChangePrice, CancelPassenger
	Kind string `json:"kind" example:"BookPassenger"`

	// Passenger is required for BookPassenger and CancelPassenger
	Passenger string `json:"passenger,omitempty" example:"GeorgeWashington"`

	// Origin is required for BookPassenger and CancelPassenger
	Origin string `json:"origin,omitempty" example:"CHI"`

	// Destination is required for BookPassenger and CancelPassenger
	Destination string `json:"destination,omitempty" example:"DFW"`

	// FlightNumber is required for ChangePrice
	FlightNumber string `json:"flightNumber,omitempty" example:"A792"`

	// NewPrice is required for ChangePrice
	NewPrice *int `json:"newPrice,omitempty" example:"120"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks that the fields required by the transaction kind are present.
// Whether the route, flight or reservation exists is left to the ledger.
func (r *SubmitTransactionRequest) Validate() error {
	errs := &ValidationErrors{}

	switch domain.TransactionKind(r.Kind) {
	case domain.KindBookPassenger, domain.KindCancelPassenger:
		r.validatePassenger(errs)
		validateAirportCode(errs, "origin", r.Origin)
		validateAirportCode(errs, "destination", r.Destination)
	case domain.KindChangePrice:
		r.validatePriceChange(errs)
	case "":
		errs.Add("kind", "kind is required")
	default:
		errs.Add("kind", "kind must be one of: BookPassenger, ChangePrice, CancelPassenger")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SubmitTransactionRequest) validatePassenger(errs *ValidationErrors) {
	if r.Passenger == "" {
		errs.Add("passenger", "passenger is required")
	}
}

func (r *SubmitTransactionRequest) validatePriceChange(errs *ValidationErrors) {
	if r.FlightNumber == "" {
		errs.Add("flightNumber", "flightNumber is required")
	}
	if r.NewPrice == nil {
		errs.Add("newPrice", "newPrice is required")
	}
}

func validateAirportCode(errs *ValidationErrors, field, code string) {
	if code == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !domain.IsAirportCode(code) {
		errs.Add(field, field+" must be a 3-letter airport code")
	}
}
