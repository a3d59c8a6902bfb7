package capabilities

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/types"
)

var formSchemaCapability = register(Capability[FormSchemaInput, types.FormSchema]{
	Spec: jsonSpec("form_schema", "Form definition from a description", ClassStructured, llm.TierBasic),
	Prompt: template("forms.json", "form_schema", func(in FormSchemaInput) map[string]string {
		return map[string]string{
			"Description": in.Description,
			"FieldTypes":  strings.Join(types.FormFieldTypes, ", "),
		}
	}),
	Decode: decodeWith[FormSchemaInput]("form_schema", normalize.DecodeFormSchema),
})

var fieldOptionsCapability = register(Capability[FieldOptionsInput, []string]{
	Spec: jsonSpec("field_options", "Choices for a select, radio or checkbox field", ClassStructured, llm.TierBasic),
	Prompt: template("forms.json", "field_options", func(in FieldOptionsInput) map[string]string {
		return map[string]string{
			"Label":     in.Label,
			"FormTitle": orDefault(in.FormTitle, "Untitled form"),
			"Count":     strconv.Itoa(orDefaultInt(in.Count, 5)),
		}
	}),
	Decode:   decodeWith[FieldOptionsInput]("field_options", normalize.DecodeFieldOptions),
	Fallback: func(FieldOptionsInput) []string { return []string{} },
})

var designThemeCapability = register(Capability[DesignThemeInput, types.DesignTheme]{
	Spec: jsonSpec("design_theme", "Color, font and layout theme", ClassStructured, llm.TierBasic),
	Prompt: template("forms.json", "design_theme", func(in DesignThemeInput) map[string]string {
		return map[string]string{
			"Description": in.Description,
			"Industry":    orDefault(in.Industry, "General"),
		}
	}),
	Decode:   decodeWith[DesignThemeInput]("design_theme", normalize.DecodeDesignTheme),
	Fallback: func(DesignThemeInput) types.DesignTheme { return normalize.DefaultDesignTheme },
})

// FormSchema generates a form definition. Failures propagate.
func (s *Service) FormSchema(ctx context.Context, in FormSchemaInput) (types.FormSchema, error) {
	return run(ctx, s, formSchemaCapability, in)
}

// FieldOptions suggests choices for one field; failures yield an empty list.
func (s *Service) FieldOptions(ctx context.Context, in FieldOptionsInput) ([]string, error) {
	return run(ctx, s, fieldOptionsCapability, in)
}

// DesignTheme generates a theme; failures yield normalize.DefaultDesignTheme.
func (s *Service) DesignTheme(ctx context.Context, in DesignThemeInput) (types.DesignTheme, error) {
	return run(ctx, s, designThemeCapability, in)
}
