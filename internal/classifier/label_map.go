package classifier

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLabelMap reads a label map in the form the training tooling writes it:
// a Python dict literal mapping emotion name to class index, e.g.
//
//	{'anger': 0, 'joy': 1, 'sadness': 2}
//
// Both single and double quotes are accepted. The mapping is returned
// inverted (class index → emotion name) because inference resolves the
// argmax index to its label.
func ParseLabelMap(r io.Reader) (map[int]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading label map: %w", err)
	}

	body := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return nil, fmt.Errorf("label map is not a dict literal: %q", body)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "{"), "}")

	labels := make(map[int]string)
	if strings.TrimSpace(body) == "" {
		return labels, nil
	}

	for _, pair := range strings.Split(body, ",") {
		name, index, err := parseLabelPair(pair)
		if err != nil {
			return nil, err
		}
		labels[index] = name
	}

	return labels, nil
}

// parseLabelPair parses a single "'name': index" element of the dict literal.
func parseLabelPair(pair string) (string, int, error) {
	parts := strings.SplitN(pair, ":", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("malformed label map entry: %q", pair)
	}

	name := strings.TrimSpace(parts[0])
	name = strings.Trim(name, `'"`)
	if name == "" {
		return "", 0, fmt.Errorf("empty label name in entry: %q", pair)
	}

	index, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, fmt.Errorf("malformed label index in entry %q: %w", pair, err)
	}

	return name, index, nil
}
