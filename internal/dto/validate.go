package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/gummy1803-ai/assessment-system/pkg/errors"
)

// 校验沿用 gin 的 binding 标签，使 HTTP 层与 Service 层规则一致
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	UseJSONFieldNames(v)
	return v
}

// UseJSONFieldNames 让校验错误使用 JSON 字段名而非 Go 字段名
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
}

// Validate 按 binding 标签校验请求，失败时返回 *errors.ValidationError
func Validate(req interface{}) error {
	return ValidationFrom(validate.Struct(req))
}

// ValidationFrom 将 validator 的错误转换为 ValidationError，其他错误原样返回
func ValidationFrom(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace 形如 SyncUploadRequest.cadres[0].name，去掉顶层结构体名
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		fields = append(fields, ns)
	}
	return pkgerrors.NewValidationError(fields...)
}
