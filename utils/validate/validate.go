package validate

import (
	"fmt"
	"reflect"
	"strings"

	cErr "talentpulse/internal/pkg/error"
	"talentpulse/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse 輸出格式化的 validator error（欄位名 / 型別 / 規則列表）
func ValidationErrorResponse(obj any, err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Sprintf("Validation error: %s", err.Error())
	}
	var b strings.Builder
	b.WriteString("Validation error:\n")
	for _, fe := range errs {
		field, _ := lookupField(obj, fe.StructField())
		fmt.Fprintf(&b, " - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
			fieldName(field, fe.StructField()), fieldType(field), fe.Tag(), fieldRules(field))
	}
	return b.String()
}

// lookupField 支援嵌入 struct 的欄位
func lookupField(obj any, structField string) (reflect.StructField, bool) {
	t := reflect.TypeOf(obj)
	if t == nil {
		return reflect.StructField{}, false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	return t.FieldByName(structField)
}

func fieldName(f reflect.StructField, fallback string) string {
	for _, key := range []string{"form", "json"} {
		if tag := f.Tag.Get(key); tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return fallback
}

func fieldType(f reflect.StructField) string {
	if f.Type == nil {
		return ""
	}
	return f.Type.Name()
}

func fieldRules(f reflect.StructField) []string {
	if tag := f.Tag.Get("binding"); tag != "" {
		return strings.Split(tag, ",")
	}
	return nil
}

// BindQueryAndValidate 綁定 query string；DTO 實作 request.Validator 時使用自訂訊息
func BindQueryAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		if _, ok := req.(request.Validator); ok {
			return err, request.GetError(req, err)
		}
		return err, cErr.ValidateQueryErr(ValidationErrorResponse(req, err))
	}
	return nil, nil
}
