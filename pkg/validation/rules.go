package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule binds one validator tag on one field to the message reported when it fails.
// An empty Message falls back to a generated one.
type Rule struct {
	Field   string
	Tag     string
	Message string
}

type FieldError struct {
	PropertyName string `json:"PropertyName"`
	ErrorMessage string `json:"ErrorMessage"`
}

type Result struct {
	Errors []FieldError
}

func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// HasError reports whether any error was recorded for the property.
func (r Result) HasError(property string) bool {
	for _, e := range r.Errors {
		if e.PropertyName == property {
			return true
		}
	}
	return false
}

type Validator[M any] interface {
	Validate(model M) Result
}

// RuleSet evaluates a table of rules against values of M.
type RuleSet[M any] struct {
	validate *validator.Validate
	messages map[string]map[string]string // field -> tag name -> message
}

// NewRuleSet registers rules for M on v. Rules for the same field run in
// table order and the first failing one is reported. Register each model
// type once per validator.
func NewRuleSet[M any](v *validator.Validate, rules []Rule) *RuleSet[M] {
	tags := make(map[string]string)
	messages := make(map[string]map[string]string)

	for _, rule := range rules {
		if existing, ok := tags[rule.Field]; ok {
			tags[rule.Field] = existing + "," + rule.Tag
		} else {
			tags[rule.Field] = rule.Tag
		}

		if messages[rule.Field] == nil {
			messages[rule.Field] = make(map[string]string)
		}
		if rule.Message != "" {
			messages[rule.Field][tagName(rule.Tag)] = rule.Message
		}
	}

	var zero M
	v.RegisterStructValidationMapRules(tags, zero)

	return &RuleSet[M]{validate: v, messages: messages}
}

func (s *RuleSet[M]) Validate(model M) Result {
	err := s.validate.Struct(model)
	if err == nil {
		return Result{}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return Result{Errors: []FieldError{{ErrorMessage: err.Error()}}}
	}

	result := Result{Errors: make([]FieldError, 0, len(validationErrors))}
	for _, e := range validationErrors {
		result.Errors = append(result.Errors, FieldError{
			PropertyName: e.Field(),
			ErrorMessage: s.message(e),
		})
	}
	return result
}

func (s *RuleSet[M]) message(e validator.FieldError) string {
	if msg, ok := s.messages[e.Field()][e.Tag()]; ok {
		return msg
	}
	return formatSingleError(e)
}

// tagName strips the parameter: "min=8" -> "min".
func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, "=")
	return name
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := formatCamelCase(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must not exceed %s characters", label, param)
		}
		return fmt.Sprintf("%s must not exceed %s", label, param)
	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", label, formatCamelCase(param))
	case "valid_enum":
		return fmt.Sprintf("%s is not a valid value", label)
	case "strong_password":
		return fmt.Sprintf("%s must contain at least one uppercase letter, one lowercase letter, one digit, and one special character", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
