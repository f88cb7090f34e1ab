package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/frontgo/frontgo"
)

// render prints the data of each response, or the whole envelope when a
// response carries no data
func (a *app) render(w io.Writer, responses ...*frontgo.Response) error {
	format, pretty := "json", true
	if a.cfg != nil {
		format, pretty = a.cfg.Output.Format, a.cfg.Output.Pretty
	}

	for i, resp := range responses {
		payload := bytes.TrimSpace(resp.Data)
		if len(payload) == 0 {
			payload = bytes.TrimSpace(resp.Raw)
		}
		if len(payload) == 0 {
			fmt.Fprintf(w, "%d %s\n", resp.HTTPStatus, http.StatusText(resp.HTTPStatus))
			continue
		}

		var err error
		switch format {
		case "yaml":
			if len(responses) > 1 && i > 0 {
				fmt.Fprintln(w, "---")
			}
			err = writeYAML(w, payload)
		default:
			err = writeJSON(w, payload, pretty)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, payload []byte, pretty bool) error {
	var buf bytes.Buffer
	var err error
	if pretty {
		err = json.Indent(&buf, payload, "", "  ")
	} else {
		err = json.Compact(&buf, payload)
	}
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// writeYAML converts the JSON token stream straight into a yaml.Node so key
// order and number text survive the conversion
func writeYAML(w io.Writer, payload []byte) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	node, err := yamlNode(dec)
	if err != nil {
		return fmt.Errorf("failed to decode output: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func yamlNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if v == '{' {
			node = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		}
		for dec.More() {
			if node.Kind == yaml.MappingNode {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key.(string)})
			}
			child, err := yamlNode(dec)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}, nil
	case json.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatBool(v)}, nil
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: "null"}, nil
	}
}
