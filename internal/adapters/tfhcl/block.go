// Package tfhcl renders Terraform configuration with hclwrite and reads it
// back with hclparse so generated files can be checked before they land.
package tfhcl

import (
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/convert"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

// KeyStyle controls how map keys are written.
type KeyStyle int

const (
	// BareKeys writes keys as identifiers when they are valid ones.
	BareKeys KeyStyle = iota
	// QuotedKeys always writes keys as quoted strings.
	QuotedKeys
)

// ResourceBuilder assembles one resource block. Attributes appear in the
// order they are set.
type ResourceBuilder struct {
	resourceType string
	localName    string
	file         *hclwrite.File
	body         *hclwrite.Body
}

func NewResource(resourceType, localName string) *ResourceBuilder {
	f := hclwrite.NewEmptyFile()
	block := f.Body().AppendNewBlock("resource", []string{resourceType, localName})
	return &ResourceBuilder{
		resourceType: resourceType,
		localName:    localName,
		file:         f,
		body:         block.Body(),
	}
}

// QuotedString returns the tokens of an HCL string literal holding value.
func QuotedString(value string) hclwrite.Tokens {
	return hclwrite.Tokens{
		{Type: hclsyntax.TokenOQuote, Bytes: []byte(`"`)},
		{Type: hclsyntax.TokenQuotedLit, Bytes: []byte(naming.EscapeText(value))},
		{Type: hclsyntax.TokenCQuote, Bytes: []byte(`"`)},
	}
}

func (b *ResourceBuilder) String(name, value string) *ResourceBuilder {
	b.body.SetAttributeRaw(name, QuotedString(value))
	return b
}

// OptionalString skips empty values.
func (b *ResourceBuilder) OptionalString(name, value string) *ResourceBuilder {
	if value == "" {
		return b
	}
	return b.String(name, value)
}

func (b *ResourceBuilder) Int(name string, value int64) *ResourceBuilder {
	b.body.SetAttributeValue(name, cty.NumberIntVal(value))
	return b
}

// OptionalInt skips zero.
func (b *ResourceBuilder) OptionalInt(name string, value int64) *ResourceBuilder {
	if value == 0 {
		return b
	}
	return b.Int(name, value)
}

func (b *ResourceBuilder) Float(name string, value float64) *ResourceBuilder {
	b.body.SetAttributeValue(name, cty.NumberFloatVal(value))
	return b
}

func (b *ResourceBuilder) Bool(name string, value bool) *ResourceBuilder {
	b.body.SetAttributeValue(name, cty.BoolVal(value))
	return b
}

func (b *ResourceBuilder) StringList(name string, values []string) *ResourceBuilder {
	elems := make([]hclwrite.Tokens, 0, len(values))
	for _, v := range values {
		elems = append(elems, QuotedString(v))
	}
	b.body.SetAttributeRaw(name, hclwrite.TokensForTuple(elems))
	return b
}

// OptionalStringList skips empty lists.
func (b *ResourceBuilder) OptionalStringList(name string, values []string) *ResourceBuilder {
	if len(values) == 0 {
		return b
	}
	return b.StringList(name, values)
}

// StringMap writes m as an object in ascending key order.
func (b *ResourceBuilder) StringMap(name string, m map[string]string, style KeyStyle) *ResourceBuilder {
	attrs := make([]hclwrite.ObjectAttrTokens, 0, len(m))
	for _, k := range convert.SortedKeys(m) {
		attrs = append(attrs, hclwrite.ObjectAttrTokens{
			Name:  keyTokens(k, style),
			Value: QuotedString(m[k]),
		})
	}
	b.body.SetAttributeRaw(name, hclwrite.TokensForObject(attrs))
	return b
}

// OptionalStringMap skips empty maps.
func (b *ResourceBuilder) OptionalStringMap(name string, m map[string]string, style KeyStyle) *ResourceBuilder {
	if len(m) == 0 {
		return b
	}
	return b.StringMap(name, m, style)
}

func keyTokens(key string, style KeyStyle) hclwrite.Tokens {
	if style == BareKeys && hclsyntax.ValidIdentifier(key) {
		return hclwrite.TokensForIdentifier(key)
	}
	return QuotedString(key)
}

// Build formats the block and returns it with its address parts.
func (b *ResourceBuilder) Build() domain.ConfigBlock {
	return domain.ConfigBlock{
		ResourceType: b.resourceType,
		LocalName:    b.localName,
		Text:         hclwrite.Format(b.file.Bytes()),
	}
}
