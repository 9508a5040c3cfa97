package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidShipping is the sentinel behind every shipping ValidationError.
var ErrInvalidShipping = errors.New("invalid shipping details")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ShippingDetails is the address and contact record captured before payment.
type ShippingDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	Department string `json:"department"`
	PostalCode string `json:"postalCode,omitempty"`
	Phone      string `json:"phone"`
}

// ValidationError carries field-level messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid shipping details"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidShipping
}

// Normalize trims every field.
func (d ShippingDetails) Normalize() ShippingDetails {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Address = strings.TrimSpace(d.Address)
	d.Complement = strings.TrimSpace(d.Complement)
	d.City = strings.TrimSpace(d.City)
	d.Department = strings.TrimSpace(d.Department)
	d.PostalCode = strings.TrimSpace(d.PostalCode)
	d.Phone = strings.TrimSpace(d.Phone)
	return d
}

// Validate checks the required fields and the email shape.
func (d ShippingDetails) Validate() error {
	fields := map[string]string{}

	required := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"email", d.Email},
		{"address", d.Address},
		{"city", d.City},
		{"department", d.Department},
		{"phone", d.Phone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields[f.name] = f.name + " is required"
		}
	}

	if _, missing := fields["email"]; !missing && !emailPattern.MatchString(strings.TrimSpace(d.Email)) {
		fields["email"] = "email is not valid"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
