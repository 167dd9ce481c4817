package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the struct tags and folds every failure into one
// ErrValidation.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		fields = append(fields, fmt.Sprintf("%s must satisfy %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(fields, "; "))
}

func validateEmailDomain(email, domainName string) error {
	if domainName == "" {
		return nil
	}
	if !strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domainName)) {
		return fmt.Errorf("%w: applicant email must belong to %s", domain.ErrValidation, domainName)
	}
	return nil
}

func validatePayment(source domain.PaymentSource, sourceName string) error {
	switch source {
	case domain.PaymentSourceGuest:
		if sourceName != "" {
			return fmt.Errorf("%w: source name is only allowed for non-guest payment", domain.ErrValidation)
		}
	case domain.PaymentSourceDepartment, domain.PaymentSourceOthers:
		if strings.TrimSpace(sourceName) == "" {
			return fmt.Errorf("%w: source name is required for %s payment", domain.ErrValidation, source)
		}
	default:
		return fmt.Errorf("%w: unknown payment source %q", domain.ErrValidation, source)
	}
	return nil
}

func validateStay(arrival, departure time.Time) error {
	if !departure.After(arrival) {
		return fmt.Errorf("%w: departure must be after arrival", domain.ErrValidation)
	}
	return nil
}
