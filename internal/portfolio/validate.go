package portfolio

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/techfolio/portfolio-api/internal/apperrors"
)

func init() {
	// report JSON field names instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

type defaulter interface {
	ApplyDefaults()
}

// Validate applies defaults to v and checks it against its schema tags.
// v must be a pointer to an entity.
func Validate(v interface{}) error {
	if d, ok := v.(defaulter); ok {
		d.ApplyDefaults()
	}
	if err := binding.Validator.ValidateStruct(v); err != nil {
		return AsValidationError(err)
	}
	return nil
}

// AsValidationError converts decoding and validator failures into an
// *apperrors.ValidationError. Other errors are returned unchanged.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}
	var already *apperrors.ValidationError
	if errors.As(err, &already) {
		return err
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &apperrors.ValidationError{Cause: err}
		for _, fe := range verrs {
			out.Issues = append(out.Issues, apperrors.FieldIssue{Field: fe.Field(), Reason: reason(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &apperrors.ValidationError{
			Issues: []apperrors.FieldIssue{{Field: field, Reason: "must be of type " + typeErr.Type.String()}},
			Cause:  err,
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &apperrors.ValidationError{Issues: []apperrors.FieldIssue{{Field: "body", Reason: "malformed JSON"}}, Cause: err}
	}
	if errors.Is(err, io.EOF) {
		return &apperrors.ValidationError{Issues: []apperrors.FieldIssue{{Field: "body", Reason: "request body is empty"}}, Cause: err}
	}
	return err
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag() + " check"
}
