package request

import (
	"errors"
	"regexp"

	cErr "talentpulse/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator DTO 可提供自訂的錯誤訊息，key 為 "Field.tag"
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d+\]`)

// GetError 將 binding 錯誤轉為查詢參數錯誤，優先使用 DTO 的自訂訊息
func GetError(request any, err error) *cErr.Error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err != nil {
			return cErr.ValidateQueryErr(err.Error())
		}
		return cErr.ValidateQueryErr("Parameter error")
	}

	if len(validationErrors) == 0 {
		return cErr.ValidateQueryErr("Parameter error")
	}
	first := validationErrors[0]
	if custom, ok := request.(Validator); ok {
		field := reg.ReplaceAllString(first.Field(), ".*")
		if message, exist := custom.GetMessages()[field+"."+first.Tag()]; exist {
			return cErr.ValidateQueryErr(message)
		}
	}
	return cErr.ValidateQueryErr(first.Error())
}
