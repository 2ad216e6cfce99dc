// Package validator wires go-playground/validator into gin binding and
// registers the project's custom validation tags.
package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	validatorV10 "github.com/go-playground/validator/v10"
)

// CustomValidator implements gin's binding.StructValidator with a single
// lazily initialised validator instance using the `binding` tag.
// CustomValidator 实现 gin 的 binding.StructValidator，使用 binding 标签
type CustomValidator struct {
	once     sync.Once
	validate *validatorV10.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

func (v *CustomValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validatorV10.New()
		v.validate.SetTagName("binding")
	})
}

// RegisterCustom registers project validation tags on the active binding
// validator. Must be called after binding.Validator is replaced.
// RegisterCustom 在当前绑定验证器上注册自定义校验标签
func RegisterCustom() {
	if v, ok := binding.Validator.Engine().(*validatorV10.Validate); ok {
		// notblank: string must contain at least one non-whitespace rune
		// notblank: 字符串去除空白后必须非空
		_ = v.RegisterValidation("notblank", notBlank)
	}
}

func notBlank(fl validatorV10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}
