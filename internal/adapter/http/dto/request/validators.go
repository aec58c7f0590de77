package request

import (
	"errors"

	"propostas_api/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("proposal_status", validProposalStatus)
}

func validProposalStatus(fl validator.FieldLevel) bool {
	_, ok := entities.ParseProposalStatus(fl.Field().String())
	return ok
}
