package dataset

import (
	"io"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeYAML reads a single YAML document, keeping the key order of
// mappings.
func decodeYAML(r io.Reader) (value any, err error) {
	dec := yaml.NewDecoder(r)

	var doc yaml.Node
	err = dec.Decode(&doc)
	if err == io.EOF {
		err = ErrEmpty
		return
	}
	if err != nil {
		return
	}

	var extra yaml.Node
	switch err = dec.Decode(&extra); err {
	case io.EOF:
		err = nil
	case nil:
		err = ErrTrailing
		return
	default:
		return
	}

	return yamlValue(&doc, false)
}

// yamlValue converts node. Numeric scalars under an "encoding" key keep
// their source text, so an unquoted opcode such as 0101 is not read as a
// number.
func yamlValue(node *yaml.Node, text bool) (value any, err error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			err = ErrEmpty
			return
		}
		return yamlValue(node.Content[0], text)
	case yaml.AliasNode:
		return yamlValue(node.Alias, text)
	case yaml.MappingNode:
		obj := object{}
		for n := 0; n+1 < len(node.Content); n += 2 {
			key := node.Content[n]
			if key.Kind != yaml.ScalarNode {
				err = ErrKeyType
				return
			}
			var elem any
			elem, err = yamlValue(node.Content[n+1], text || key.Value == KEY_ENCODING)
			if err != nil {
				return
			}
			obj.set(key.Value, elem)
		}
		value = obj
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			var elem any
			elem, err = yamlValue(child, text)
			if err != nil {
				return
			}
			arr = append(arr, elem)
		}
		value = arr
	case yaml.ScalarNode:
		value, err = yamlScalar(node, text)
	}

	return
}

// yamlScalar converts a scalar to int64, *big.Int, float64, bool, nil or
// string according to its resolved tag. With text set, numbers are kept as
// their source text.
func yamlScalar(node *yaml.Node, text bool) (value any, err error) {
	tag := node.ShortTag()
	if text && (tag == "!!int" || tag == "!!float") {
		value = node.Value
		return
	}

	switch tag {
	case "!!int", "!!float":
		// Integers too wide for 64 bits resolve as floats.
		digits := strings.ReplaceAll(node.Value, "_", "")
		if i64, ierr := strconv.ParseInt(digits, 0, 64); ierr == nil {
			value = i64
			return
		}
		if bi, ok := new(big.Int).SetString(digits, 0); ok {
			value = bi
			return
		}
		var f64 float64
		err = node.Decode(&f64)
		value = f64
	case "!!bool":
		var b bool
		err = node.Decode(&b)
		value = b
	case "!!null":
		value = nil
	default:
		value = node.Value
	}

	return
}
