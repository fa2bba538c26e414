package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/machine_admin/internal/services"
)

// FormErrorKey 无法归属到具体字段的表单错误
const FormErrorKey = "_form"

var registerTagNameOnce sync.Once

// RegisterFormTagNames 让校验错误中的字段名使用 form 标签，与模板中的输入框名称一致
func RegisterFormTagNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// fieldMessage 把单条校验错误翻译为提示文字
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "请填写此项"
	case "max":
		return fmt.Sprintf("长度不能超过%s个字符", fe.Param())
	case "min":
		return fmt.Sprintf("长度不能少于%s个字符", fe.Param())
	case "gt":
		return "请选择有效的选项"
	case "eqfield":
		return "两次输入不一致"
	default:
		return "格式不正确"
	}
}

// formErrors 将绑定错误或服务层校验错误转换为 字段名 → 提示 的映射。
// 返回 nil 表示 err 不是表单错误。
func formErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			if _, ok := out[fe.Field()]; !ok {
				out[fe.Field()] = fieldMessage(fe)
			}
		}
		return out
	}
	var serr *services.ValidationError
	if errors.As(err, &serr) {
		return serr.Fields
	}
	return nil
}

// bindErrors 绑定失败时的表单错误，数值解析失败等非校验错误归入 FormErrorKey
func bindErrors(err error) map[string]string {
	if fe := formErrors(err); fe != nil {
		return fe
	}
	return map[string]string{FormErrorKey: "表单数据格式错误"}
}
