package people

import (
	_ "embed"
	"fmt"
	"github.com/hjson/hjson-go/v4"
)

//go:embed people.hjson
var defaultDataset []byte

// LoadDataset decodes an Hjson (or plain JSON) list of people.
func LoadDataset(data []byte) ([]Person, error) {
	var persons []Person
	if err := hjson.Unmarshal(data, &persons); err != nil {
		return nil, fmt.Errorf("people dataset: %w", err)
	}
	return persons, nil
}

func DefaultDataset() []Person {
	var persons, err = LoadDataset(defaultDataset)
	if err != nil {
		panic(err)
	}
	return persons
}
