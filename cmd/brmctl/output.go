package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func (app *cli) print(v interface{}) error {
	var (
		raw []byte
		err error
	)
	switch app.output {
	case outputYAML:
		raw, err = toYAML(v)
	default:
		raw, err = json.MarshalIndent(v, "", "  ")
		raw = append(raw, '\n')
	}
	if err != nil {
		return err
	}
	_, err = app.out.Write(raw)
	return err
}

// toYAML goes through JSON so the wire field names and their order are kept.
func toYAML(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	var node yaml.Node
	err = yaml.Unmarshal(raw, &node)
	if err != nil {
		return nil, fmt.Errorf("convert output: %w", err)
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

// blockStyle drops the flow and quoting styles the JSON parse left behind.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
