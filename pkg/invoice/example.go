package invoice

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed example.yaml
var exampleYAML []byte

var exampleInvoice = mustParseExample()

func mustParseExample() Invoice {
	var inv Invoice
	if err := yaml.Unmarshal(exampleYAML, &inv); err != nil {
		panic(fmt.Sprintf("invoice: parsing embedded example record: %v", err))
	}
	return inv
}

// Example returns a copy of the canned example record every editing session
// starts from.
func Example() Invoice {
	return exampleInvoice.Clone()
}
