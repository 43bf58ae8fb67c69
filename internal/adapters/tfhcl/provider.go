package tfhcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

const (
	ProviderName    = "axonops"
	ProviderSource  = "hashicorp/axonops"
	ProviderVersion = "1.0.0"
	APIKeyVariable  = "axonops_api_key"

	DefaultTokenType = "AxonApi"
)

// ProviderSettings is what the generated provider block points at. The API
// key itself is never part of it.
type ProviderSettings struct {
	Host      string
	Protocol  string
	OrgID     string
	TokenType string
}

// RenderProvider returns the contents of provider.tf: the required_providers
// pin, the provider block and the sensitive API key variable.
func RenderProvider(s ProviderSettings) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	tf := root.AppendNewBlock("terraform", nil).Body()
	required := tf.AppendNewBlock("required_providers", nil).Body()
	required.SetAttributeValue(ProviderName, cty.ObjectVal(map[string]cty.Value{
		"source":  cty.StringVal(ProviderSource),
		"version": cty.StringVal(ProviderVersion),
	}))
	root.AppendNewline()

	provider := root.AppendNewBlock("provider", []string{ProviderName}).Body()
	provider.SetAttributeTraversal("api_key", hcl.Traversal{
		hcl.TraverseRoot{Name: "var"},
		hcl.TraverseAttr{Name: APIKeyVariable},
	})
	provider.SetAttributeRaw("axonops_host", QuotedString(s.Host))
	provider.SetAttributeRaw("axonops_protocol", QuotedString(s.Protocol))
	provider.SetAttributeRaw("org_id", QuotedString(s.OrgID))
	if s.TokenType != "" && s.TokenType != DefaultTokenType {
		provider.SetAttributeRaw("token_type", QuotedString(s.TokenType))
	}
	root.AppendNewline()

	variable := root.AppendNewBlock("variable", []string{APIKeyVariable}).Body()
	variable.SetAttributeValue("description", cty.StringVal("AxonOps API key"))
	variable.SetAttributeTraversal("type", hcl.Traversal{hcl.TraverseRoot{Name: "string"}})
	variable.SetAttributeValue("sensitive", cty.True)

	return hclwrite.Format(f.Bytes())
}
