package gradient

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	gradediterrors "github.com/alexisbeaulieu97/gradedit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks the gradient invariants: at least MinStops stops, every
// position within [0,1], channels within range for their representation,
// and a single representation across all stops.
func (s Stops) Validate() error {
	if len(s) < MinStops {
		return gradediterrors.NewValidationError("stops", fmt.Sprintf("gradient needs at least %d stops, got %d", MinStops, len(s)), nil)
	}

	v := validatorInstance()
	space := s.Space()

	for i, stop := range s {
		if err := v.Struct(stop); err != nil {
			return convertValidationError(i, err)
		}

		if stop.Color.Space != space {
			return gradediterrors.NewValidationError(fieldForStop(i, "color"), fmt.Sprintf("color is %s but gradient uses %s", stop.Color.Space, space), nil)
		}

		switch stop.Color.Space {
		case colorspace.RGB:
			if err := v.Struct(stop.Color.RGB); err != nil {
				return convertValidationError(i, err)
			}
		case colorspace.HSV:
			if err := v.Struct(stop.Color.HSV); err != nil {
				return convertValidationError(i, err)
			}
		case colorspace.Hex:
			if _, err := colorspace.HexToRGB(stop.Color.Hex); err != nil {
				return gradediterrors.NewValidationError(fieldForStop(i, "color"), err.Error(), err)
			}
		}
	}

	return nil
}

func convertValidationError(index int, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldForStop(index, strings.ToLower(ve.Field()))
		if ve.Field() == "Position" {
			field = fieldForStop(index, "stop")
		}
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gradediterrors.NewValidationError(field, msg, err)
	}
	return gradediterrors.NewValidationError(fmt.Sprintf("stops[%d]", index), err.Error(), err)
}

func fieldForStop(index int, field string) string {
	return fmt.Sprintf("stops[%d].%s", index, field)
}
