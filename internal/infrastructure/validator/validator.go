package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
	"github.com/mikiasgoitom/DailyWish/internal/utils"
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerWishDate(v)
	return &AppValidator{validate: v}
}

// ValidateDate checks that date is a real calendar day in YYYY-MM-DD form.
func (av *AppValidator) ValidateDate(date string) error {
	if err := av.validate.Var(date, "required,wishdate"); err != nil {
		return fmt.Errorf("date %q must be a calendar date in YYYY-MM-DD form", date)
	}
	return nil
}

// ValidateFID checks that fid identifies a user.
func (av *AppValidator) ValidateFID(fid uint64) error {
	if err := av.validate.Var(fid, "required,gt=0"); err != nil {
		return fmt.Errorf("fid must be a positive integer")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerWishDate(v)
	}
}

func registerWishDate(v *validator.Validate) {
	_ = v.RegisterValidation("wishdate", wishDateFL)
}

// wishDateFL accepts YYYY-MM-DD strings that name an existing day.
func wishDateFL(fl validator.FieldLevel) bool {
	return utils.IsWishDate(fl.Field().String())
}
