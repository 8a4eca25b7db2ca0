package klass

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

// Descriptor configures the hierarchy walk for one classification domain.
// The walk itself is identical across domains; only depth, the per-level
// nesting key and the optional name cleanup differ.
type Descriptor struct {
	// MaxLevel is the deepest level this domain supports.
	MaxLevel domain.Level
	// ChildKeys maps a child level to the JSON key its entries nest under,
	// e.g. 2->"counties", 3->"municipalities".
	ChildKeys map[domain.Level]string
	// CleanName, when set, rewrites names at the given level before they are
	// attached to the tree.
	CleanName func(level domain.Level, name string) string
}

func (d Descriptor) cleanName(level domain.Level, name string) string {
	if d.CleanName == nil {
		return name
	}
	return d.CleanName(level, name)
}

// Node is one tree node. Children is non-nil exactly when the node's child
// level was within the requested depth, so leaves at the requested level
// serialize without a nesting key and expanded nodes always carry one, even
// when empty.
type Node struct {
	Code     string
	Name     string
	Children []*Node

	childKey string
}

// MarshalJSON emits {"code": ..., "name": ..., "<childKey>": [...]} with the
// domain-specific nesting key.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"code":`)
	code, err := sonic.Marshal(n.Code)
	if err != nil {
		return nil, err
	}
	buf.Write(code)
	buf.WriteString(`,"name":`)
	name, err := sonic.Marshal(n.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)
	if n.Children != nil && n.childKey != "" {
		key, err := sonic.Marshal(n.childKey)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		children, err := sonic.Marshal(n.Children)
		if err != nil {
			return nil, err
		}
		buf.Write(children)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BuildToLevel reconstructs the nested tree down to the requested level.
// Level 1 returns the flat level-1 entries with no children attached.
func BuildToLevel(ix *Index, d Descriptor, level domain.Level) ([]*Node, error) {
	if !level.Valid() || level > d.MaxLevel {
		return nil, constants.NewValidationError(
			fmt.Sprintf("Parameter 'level' must be between 1 and %d", d.MaxLevel),
			"level",
			int(level),
		)
	}

	roots := ix.ByLevel(domain.Level1)
	nodes := make([]*Node, 0, len(roots))
	for _, entry := range roots {
		node := &Node{Code: entry.Code, Name: d.cleanName(domain.Level1, entry.Name)}
		if level > domain.Level1 {
			attachChildren(ix, d, node, domain.Level2, level)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func attachChildren(ix *Index, d Descriptor, parent *Node, childLevel, requested domain.Level) {
	parent.childKey = d.ChildKeys[childLevel]
	parent.Children = make([]*Node, 0)
	for _, entry := range ix.Children(parent.Code) {
		child := &Node{Code: entry.Code, Name: d.cleanName(childLevel, entry.Name)}
		if childLevel < requested {
			attachChildren(ix, d, child, childLevel+1, requested)
		}
		parent.Children = append(parent.Children, child)
	}
}
