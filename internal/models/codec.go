package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// enum accepts any value that knows whether it has a wire name.
	if err := v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ IsValid() bool })
		return ok && e.IsValid()
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the structural rules of a post: required fields are non-empty,
// updatedAt is not before createdAt, tags are distinct known values, and every
// content block holds exactly one valid variant.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fromValidator(err, "")
	}
	for i, b := range p.Contents {
		prefix := fmt.Sprintf("contents[%d]", i)
		switch v := b.Content.(type) {
		case nil:
			return &ValidationError{Field: prefix, Reason: "block has no variant"}
		case Markdown, Tip, Code, Fold:
			if err := validate.Struct(v); err != nil {
				return fromValidator(err, prefix+".")
			}
		default:
			return &ValidationError{Field: prefix, Reason: fmt.Sprintf("unsupported block variant %T", v)}
		}
	}
	return nil
}

// Serialize validates p and renders it as JSON.
func Serialize(p *Post) ([]byte, error) {
	if p == nil {
		return nil, &ValidationError{Reason: "post is nil"}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("serialize post: %w", err)
	}
	return data, nil
}

// Deserialize parses a JSON post, resolving each content block from its "type"
// key, and validates the result.
func Deserialize(data []byte) (*Post, error) {
	var p Post
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, asDecodeError(err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// asDecodeError leaves the package's own errors alone and wraps everything else
// from encoding/json.
func asDecodeError(err error) error {
	var (
		de *DecodeError
		ve *ValidationError
		uv *UnknownVariantError
		mf *MissingFieldError
	)
	if errors.As(err, &de) || errors.As(err, &ve) || errors.As(err, &uv) || errors.As(err, &mf) {
		return err
	}
	return &DecodeError{Err: err}
}

func fromValidator(err error, prefix string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Reason: err.Error()}
	}
	fe := fieldErrs[0]
	field := fe.Field()
	// Namespace is "Post.tags[0]"; keep everything after the root struct name.
	if ns := fe.Namespace(); strings.Contains(ns, ".") {
		field = ns[strings.Index(ns, ".")+1:]
	}
	return &ValidationError{Field: prefix + field, Reason: ruleReason(fe)}
}

func ruleReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gtefield":
		return "must not be before " + lowerFirst(fe.Param())
	case "unique":
		return "contains duplicates"
	case "enum":
		return "is not a known value"
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
