package utils

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	trans     ut.Translator
	transOnce sync.Once
	transErr  error
)

// InitTrans registers the field-name function and error translations on
// gin's validator. Safe to call more than once.
func InitTrans(lang string) error {
	transOnce.Do(func() {
		transErr = initTrans(lang)
	})
	return transErr
}

func initTrans(lang string) error {
	// bodies carrying fields a request struct does not declare are rejected
	binding.EnableDecoderDisallowUnknownFields = true

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// report fields by their wire names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	enT := en.New()
	uni := ut.New(enT, enT, zh.New())

	trans, ok = uni.GetTranslator(lang)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", lang)
	}

	switch lang {
	case "zh":
		return zhTranslations.RegisterDefaultTranslations(v, trans)
	default:
		return enTranslations.RegisterDefaultTranslations(v, trans)
	}
}

// ParseToValidationError turns a binding error into a client-facing message.
func ParseToValidationError(err error) any {
	if v, ok := err.(validator.ValidationErrors); ok && trans != nil {
		return v.Translate(trans)
	}
	return "Invalid parameter"
}

func ValidateEmail(email string) bool {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return email != ""
	}
	return v.Var(email, "required,email") == nil
}
