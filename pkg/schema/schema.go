package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Definition describes a form: its inputs in document order, default values
// and custom error messages.
type Definition struct {
	Name     string            `yaml:"name"`
	Title    string            `yaml:"title"`
	Action   string            `yaml:"action"`
	Submit   string            `yaml:"submit"`
	Inputs   []Input           `yaml:"inputs"`
	Defaults map[string]string `yaml:"defaults"`
	Errors   map[string]string `yaml:"errors"`
}

// Input describes one input element. Pointer fields are optional attributes.
type Input struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Label       string   `yaml:"label"`
	Placeholder string   `yaml:"placeholder"`
	Value       string   `yaml:"value"`
	Checked     bool     `yaml:"checked"`
	Disabled    bool     `yaml:"disabled"`
	Required    bool     `yaml:"required"`
	Pattern     string   `yaml:"pattern"`
	MinLength   *int     `yaml:"minlength"`
	MaxLength   *int     `yaml:"maxlength"`
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
}

// Parse decodes and validates a YAML form definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseYAML, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads a YAML form definition from path.
func Load(path string) (*Definition, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return Parse(data)
}

// Validate reports definition errors that would otherwise be ignored
// silently when the form is built.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: form name is required", ErrInvalidSchema)
	}
	if len(d.Inputs) == 0 {
		return fmt.Errorf("%w: form %q has no inputs", ErrInvalidSchema, d.Name)
	}
	for i, in := range d.Inputs {
		if in.Type != "" && !form.InputType(in.Type).Known() {
			return fmt.Errorf("%w: input[%d] %q: unknown type %q", ErrInvalidSchema, i, in.Name, in.Type)
		}
		if in.Pattern != "" {
			if _, err := validator.CompilePattern(in.Pattern); err != nil {
				return fmt.Errorf("%w: input[%d] %q: %v", ErrInvalidSchema, i, in.Name, err)
			}
		}
		if in.MinLength != nil && *in.MinLength < 0 {
			return fmt.Errorf("%w: input[%d] %q: negative minlength", ErrInvalidSchema, i, in.Name)
		}
		if in.MaxLength != nil && *in.MaxLength < 0 {
			return fmt.Errorf("%w: input[%d] %q: negative maxlength", ErrInvalidSchema, i, in.Name)
		}
	}
	return nil
}

// Build creates a fresh form from the definition. Every call returns a new
// form, so a definition can serve concurrent requests.
func (d *Definition) Build() *form.Form {
	inputs := make([]*form.Input, 0, len(d.Inputs))
	for _, in := range d.Inputs {
		inputs = append(inputs, in.build())
	}
	f := form.New(d.Name, inputs...)
	f.SetAction(d.Action)
	return f
}

func (in Input) build() *form.Input {
	opts := []form.InputOption{
		form.WithLabel(in.Label),
		form.WithPlaceholder(in.Placeholder),
		form.WithValue(in.Value),
	}
	if in.Checked {
		opts = append(opts, form.WithChecked())
	}
	if in.Disabled {
		opts = append(opts, form.WithDisabled())
	}
	if in.Required {
		opts = append(opts, form.Required())
	}
	if in.Pattern != "" {
		opts = append(opts, form.Pattern(in.Pattern))
	}
	if in.MinLength != nil {
		opts = append(opts, form.MinLength(*in.MinLength))
	}
	if in.MaxLength != nil {
		opts = append(opts, form.MaxLength(*in.MaxLength))
	}
	if in.Min != nil {
		opts = append(opts, form.Min(*in.Min))
	}
	if in.Max != nil {
		opts = append(opts, form.Max(*in.Max))
	}
	return form.NewInput(in.Name, form.InputType(in.Type), opts...)
}

// Config returns a controller configuration carrying the definition's
// defaults and custom errors. Callbacks are left to the caller.
func Config[T any](d *Definition) form.Config[T] {
	return form.Config[T]{
		DefaultValues: form.Values(d.Defaults),
		CustomErrors:  d.Errors,
	}
}
