// Package yaml decodes YAML documents into skema values, preserving mapping
// key order.
package yaml

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/skemaly/skema"
)

// DecodeBytes decodes a single YAML document from data.
func DecodeBytes(data []byte) (skema.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return skema.Value{}, err
	}
	if root.Kind == 0 {
		// empty input
		return skema.Null(), nil
	}
	d := decoder{expanding: map[*yaml.Node]bool{}}
	return d.fromNode(&root)
}

// decoder tracks anchor nodes currently being expanded so that a recursive
// alias is reported as an error instead of overflowing the stack.
type decoder struct {
	expanding map[*yaml.Node]bool
}

func (d decoder) fromNode(n *yaml.Node) (skema.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return skema.Null(), nil
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		if d.expanding[n.Alias] {
			return skema.Value{}, fmt.Errorf("yaml: anchor %q contains itself at line %d", n.Value, n.Line)
		}
		d.expanding[n.Alias] = true
		v, err := d.fromNode(n.Alias)
		delete(d.expanding, n.Alias)
		return v, err
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		items := make([]skema.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.fromNode(c)
			if err != nil {
				return skema.Value{}, err
			}
			items = append(items, v)
		}
		return skema.Arr(items...), nil
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return skema.Value{}, errors.New("yaml: malformed mapping node")
		}
		members := make([]skema.Member, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return skema.Value{}, fmt.Errorf("yaml: unsupported mapping key at line %d", key.Line)
			}
			v, err := d.fromNode(n.Content[i+1])
			if err != nil {
				return skema.Value{}, err
			}
			members = append(members, skema.M(key.Value, v))
		}
		return skema.Obj(members...), nil
	}
	return skema.Value{}, fmt.Errorf("yaml: unsupported node kind %d", n.Kind)
}

func fromScalar(n *yaml.Node) (skema.Value, error) {
	switch n.Tag {
	case "!!null":
		return skema.Null(), nil
	case "!!bool":
		// yaml.v3 also resolves YAML 1.1 spellings (yes/on) to !!bool.
		var b bool
		if err := n.Decode(&b); err != nil {
			return skema.Value{}, fmt.Errorf("yaml: bad boolean %q at line %d", n.Value, n.Line)
		}
		return skema.Bool(b), nil
	case "!!int":
		// hex, octal and underscored forms resolve to !!int but do not
		// parse as floats; let yaml.v3 read them.
		var i int64
		if err := n.Decode(&i); err == nil {
			return skema.Num(float64(i)), nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return skema.Value{}, fmt.Errorf("yaml: bad number %q at line %d", n.Value, n.Line)
		}
		return skema.Num(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return skema.Value{}, fmt.Errorf("yaml: bad number %q at line %d", n.Value, n.Line)
		}
		return skema.Num(f), nil
	default:
		return skema.Str(n.Value), nil
	}
}
