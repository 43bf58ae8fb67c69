package domain

import "fmt"

// ClusterScope identifies the cluster whose resources are being imported.
type ClusterScope struct {
	OrgID       string
	ClusterType string
	ClusterName string
}

// ConfigBlock is one rendered Terraform resource block.
type ConfigBlock struct {
	ResourceType string
	LocalName    string
	Text         []byte
}

func (b ConfigBlock) Address() string {
	return b.ResourceType + "." + b.LocalName
}

// AdoptionCommand binds a live resource, addressed by ImportID, to a block.
type AdoptionCommand struct {
	Address  string
	ImportID string
}

// Transcript is everything one kind produced during a run. Blocks[i] and
// Commands[i] always refer to the same live resource.
type Transcript struct {
	Kind     ResourceKind
	Blocks   []ConfigBlock
	Commands []AdoptionCommand
	Skipped  int
	Fetch    FetchStats
}

// Add appends a block together with the command that adopts it.
func (t *Transcript) Add(block ConfigBlock, importID string) {
	t.Blocks = append(t.Blocks, block)
	t.Commands = append(t.Commands, AdoptionCommand{Address: block.Address(), ImportID: importID})
}

func (t Transcript) Len() int {
	return len(t.Blocks)
}

func (t Transcript) Validate() error {
	if len(t.Blocks) != len(t.Commands) {
		return fmt.Errorf("kind %s produced %d blocks but %d adoption commands", t.Kind, len(t.Blocks), len(t.Commands))
	}
	seen := make(map[string]struct{}, len(t.Blocks))
	for i, b := range t.Blocks {
		if t.Commands[i].Address != b.Address() {
			return fmt.Errorf("kind %s: command %d targets %s, block is %s", t.Kind, i, t.Commands[i].Address, b.Address())
		}
		if _, dup := seen[b.Address()]; dup {
			return fmt.Errorf("kind %s: duplicate resource address %s", t.Kind, b.Address())
		}
		seen[b.Address()] = struct{}{}
	}
	return nil
}
