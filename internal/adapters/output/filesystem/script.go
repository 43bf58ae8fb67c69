package filesystem

import (
	"strings"

	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

const credentialEnvVar = "TF_VAR_" + tfhcl.APIKeyVariable

// ScriptHeader describes the run in the script's leading comments.
type ScriptHeader struct {
	ClusterName string
	RunID       string
}

// RenderScript builds the adoption script: the credential guard runs before
// the first import so a missing key aborts without touching state.
func RenderScript(h ScriptHeader, commands []domain.AdoptionCommand) []byte {
	var b strings.Builder

	b.WriteString("#!/bin/bash\n")
	b.WriteString("# Terraform import commands for cluster: " + commentSafe(h.ClusterName) + "\n")
	if h.RunID != "" {
		b.WriteString("# Generated by axonops-importer, run " + commentSafe(h.RunID) + "\n")
	} else {
		b.WriteString("# Generated by axonops-importer\n")
	}
	b.WriteString("\nset -e\n\n")

	b.WriteString("# Check that API key is set\n")
	b.WriteString(`if [ -z "$` + credentialEnvVar + `" ]; then` + "\n")
	b.WriteString(`  echo "Error: ` + credentialEnvVar + ` environment variable is not set"` + "\n")
	b.WriteString(`  echo "Run: export ` + credentialEnvVar + `='your-api-key'"` + "\n")
	b.WriteString("  exit 1\n")
	b.WriteString("fi\n\n")

	for _, c := range commands {
		b.WriteString(ImportCommand(c))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// ImportCommand renders one terraform import line.
func ImportCommand(c domain.AdoptionCommand) string {
	return "terraform import " + c.Address + " " + naming.ShellQuote(c.ImportID)
}

func commentSafe(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
