package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/account-service/pkg/util"
)

var validate = validator.New()

// validateStruct runs tag validation and translates failures into the
// VALIDATION_FAILED taxonomy before anything reaches the service layer.
func validateStruct(req any) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make(map[string]any, len(verrs))
			for _, fieldErr := range verrs {
				details[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
			}
			return apperrors.NewValidationError("invalid request body", details)
		}
		return apperrors.NewValidationError("invalid request body", nil)
	}
	return nil
}
