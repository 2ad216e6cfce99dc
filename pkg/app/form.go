package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	validatorV10 "github.com/go-playground/validator/v10"
)

// ValidError is a single translated field validation failure.
// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Maps() map[string]string {
	m := make(map[string]string)
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

func (v ValidErrors) MapsToString() string {
	var parts []string
	for _, err := range v {
		parts = append(parts, err.Key+":"+err.Message)
	}
	return strings.Join(parts, ";")
}

// BindAndValid binds the request to v and translates validation failures
// using the translator placed in the context by the lang middleware.
// BindAndValid 绑定请求参数并用上下文中的翻译器翻译校验错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBind(v)
	if err == nil {
		return true, nil
	}

	verrs, ok := err.(validatorV10.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{Key: "body", Message: err.Error()})
		return false, errs
	}

	trans, exists := c.Get("trans")
	if !exists {
		for _, verr := range verrs {
			errs = append(errs, &ValidError{Key: verr.Field(), Message: verr.Error()})
		}
		return false, errs
	}

	translator := trans.(ut.Translator)
	for key, value := range verrs.Translate(translator) {
		errs = append(errs, &ValidError{Key: key, Message: value})
	}

	return false, errs
}
