package utils

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
	initOnce   sync.Once
)

func initValidator() {
	validate = validator.New()

	// ใช้ชื่อจาก json tag ใน error แทนชื่อ field ของ struct
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)
}

// Validator คืน instance ที่ใช้ร่วมกันทั้ง app
func Validator() *validator.Validate {
	initOnce.Do(initValidator)
	return validate
}

// ValidateStruct ตรวจ struct ตาม validate tags
func ValidateStruct(s any) error {
	return Validator().Struct(s)
}

// GetValidationErrors แปลง error ของ validator เป็น map[field]message (ภาษาอังกฤษ)
func GetValidationErrors(err error) map[string]string {
	Validator()

	errs := make(map[string]string)
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil {
			errs["_"] = err.Error()
		}
		return errs
	}

	for _, fe := range validationErrs {
		errs[fieldPath(fe)] = fe.Translate(translator)
	}
	return errs
}

// fieldPath ตัดชื่อ struct ชั้นนอกสุดออก เช่น Config.Database.Driver -> Database.Driver
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
