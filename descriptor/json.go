package descriptor

import (
	"fmt"

	json "github.com/goccy/go-json"

	paramval "github.com/paramval/paramval"
)

// ImportJSON decodes a JSON description document and compiles it.
func ImportJSON(data []byte) (*paramval.Parameter, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("descriptor: invalid JSON: %w", err)
	}
	return Import(doc)
}
