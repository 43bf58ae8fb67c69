package tfhcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	jsoniter "github.com/json-iterator/go"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	apperrors "github.com/olusolaa/axonops-importer/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParsedResource is a resource block read back from generated text, with its
// literal attributes evaluated to plain Go values.
type ParsedResource struct {
	Type  string
	Name  string
	Attrs map[string]any
}

func (r ParsedResource) Address() string {
	return r.Type + "." + r.Name
}

// DiagnosticsError carries parse or evaluation diagnostics for one file.
type DiagnosticsError struct {
	Operation string
	FilePath  string
	Diags     hcl.Diagnostics
}

func (e *DiagnosticsError) Error() string {
	return fmt.Sprintf("HCL %s error in %q: %s", e.Operation, e.FilePath, e.Diags.Error())
}

// Validate checks that src is syntactically valid HCL.
func Validate(filename string, src []byte) error {
	_, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return apperrors.Wrap(&DiagnosticsError{Operation: "parse", FilePath: filename, Diags: diags},
			apperrors.CodeHCLRenderError, fmt.Sprintf("generated file %s is not valid HCL", filename))
	}
	return nil
}

// ParseResources parses src and evaluates every resource block attribute
// without an evaluation context, so only literal values are accepted.
func ParseResources(filename string, src []byte) ([]ParsedResource, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, apperrors.Wrap(&DiagnosticsError{Operation: "parse", FilePath: filename, Diags: diags},
			apperrors.CodeHCLRenderError, fmt.Sprintf("generated file %s is not valid HCL", filename))
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, apperrors.New(apperrors.CodeInternal, fmt.Sprintf("unexpected body type %T for %s", file.Body, filename))
	}

	var resources []ParsedResource
	for _, block := range body.Blocks {
		if block.Type != "resource" || len(block.Labels) != 2 {
			continue
		}
		res := ParsedResource{Type: block.Labels[0], Name: block.Labels[1], Attrs: make(map[string]any, len(block.Body.Attributes))}
		for name, attr := range block.Body.Attributes {
			val, valDiags := attr.Expr.Value(nil)
			if valDiags.HasErrors() {
				return nil, apperrors.Wrap(&DiagnosticsError{Operation: "evaluate", FilePath: filename, Diags: valDiags},
					apperrors.CodeHCLRenderError, fmt.Sprintf("attribute %s of %s is not a literal", name, res.Address()))
			}
			raw, err := ctyjson.Marshal(val, val.Type())
			if err != nil {
				return nil, apperrors.Wrap(err, apperrors.CodeHCLRenderError, fmt.Sprintf("converting %s.%s", res.Address(), name))
			}
			var goVal any
			if err := json.Unmarshal(raw, &goVal); err != nil {
				return nil, apperrors.Wrap(err, apperrors.CodeHCLRenderError, fmt.Sprintf("converting %s.%s", res.Address(), name))
			}
			res.Attrs[name] = goVal
		}
		resources = append(resources, res)
	}
	return resources, nil
}
