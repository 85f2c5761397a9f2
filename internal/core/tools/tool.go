package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
	"weatheragent.app/pkg/errors"
)

// FailureMode decides what happens when a tool fails
type FailureMode int

const (
	// FailureSurfaced turns the error into text the model can read
	FailureSurfaced FailureMode = iota
	// FailureOpaque propagates the error to the caller of the run
	FailureOpaque
)

func (m FailureMode) String() string {
	switch m {
	case FailureOpaque:
		return "opaque"
	default:
		return "surfaced"
	}
}

// MarshalText renders the mode by name in JSON payloads
func (m FailureMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Tool is a named, described and schema-carrying function exposed to the model
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	FailureMode FailureMode

	decode func(arguments json.RawMessage) (any, error)
	run    func(ctx context.Context, args any) (any, error)
	schema *gojsonschema.Schema
}

// validator is implemented by argument types that check themselves
type validator interface {
	Validate() error
}

// NewFunctionTool builds a tool whose parameter schema is reflected from Args.
// Arguments are decoded into Args and, when Args has a Validate method, validated
// before the handler runs.
func NewFunctionTool[Args, Result any](name, description string, handler func(ctx context.Context, args Args) (Result, error)) (*Tool, error) {
	if name == "" {
		return nil, errors.NewConfigurationError("tool name cannot be empty", nil)
	}
	if handler == nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("tool %s has no handler", name), nil)
	}

	parameters, err := reflectParameters[Args]()
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("tool %s: cannot build parameter schema", name), err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(parameters))
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("tool %s: parameter schema does not compile", name), err)
	}

	return &Tool{
		Name:        name,
		Description: description,
		Parameters:  parameters,
		FailureMode: FailureSurfaced,
		schema:      schema,
		decode: func(arguments json.RawMessage) (any, error) {
			var args Args
			if err := json.Unmarshal(arguments, &args); err != nil {
				return nil, errors.NewValidationError("failed to parse arguments: " + err.Error())
			}
			if v, ok := any(args).(validator); ok {
				if err := v.Validate(); err != nil {
					return nil, err
				}
			}
			return args, nil
		},
		run: func(ctx context.Context, args any) (any, error) {
			return handler(ctx, args.(Args))
		},
	}, nil
}

// WithFailureMode returns the tool switched to the given mode
func (t *Tool) WithFailureMode(mode FailureMode) *Tool {
	t.FailureMode = mode
	return t
}

// ValidateArguments checks raw arguments against the parameter schema
func (t *Tool) ValidateArguments(arguments json.RawMessage) error {
	result, err := t.schema.Validate(gojsonschema.NewBytesLoader(arguments))
	if err != nil {
		return errors.NewValidationError("failed to parse arguments: " + err.Error())
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	message := first.String()
	if len(result.Errors()) > 1 {
		message = fmt.Sprintf("%s (and %d more)", message, len(result.Errors())-1)
	}
	return errors.NewValidationError("invalid arguments for " + t.Name + ": " + message)
}

// DecodeArguments checks raw arguments against the parameter schema, decodes them
// and runs the argument type's own validation. Every failure is a VALIDATION_ERROR.
func (t *Tool) DecodeArguments(arguments json.RawMessage) (any, error) {
	if err := t.ValidateArguments(arguments); err != nil {
		return nil, err
	}
	return t.decode(arguments)
}

func emptyParameters() map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"additionalProperties": false,
	}
}

func reflectParameters[Args any]() (parameters map[string]any, err error) {
	argsType := reflect.TypeOf((*Args)(nil)).Elem()
	if argsType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("arguments must be a struct, got %s", argsType)
	}
	// the reflector needs a named type to describe
	if argsType.Name() == "" {
		if argsType.NumField() == 0 {
			return emptyParameters(), nil
		}
		return nil, fmt.Errorf("arguments must be a named struct type, got %s", argsType)
	}

	defer func() {
		if p := recover(); p != nil {
			parameters = nil
			err = fmt.Errorf("reflecting %s: %v", argsType, p)
		}
	}()

	reflector := &jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: false,
		AllowAdditionalProperties:  false,
	}

	var zero Args
	schema := reflector.Reflect(&zero)

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &parameters); err != nil {
		return nil, err
	}

	delete(parameters, "$schema")
	delete(parameters, "$id")
	if _, ok := parameters["properties"]; !ok {
		parameters["properties"] = map[string]any{}
	}

	return parameters, nil
}
