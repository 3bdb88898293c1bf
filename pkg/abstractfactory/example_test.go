package abstractfactory_test

import (
	"fmt"

	"github.com/dmitrymomot/patternkit/pkg/abstractfactory"
)

func ExampleFor() {
	type job struct {
		Name  string `json:"name" yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}

	// Selecting the factory selects the whole family; the encode and decode
	// sites below do not change when "yaml" becomes "json".
	f, err := abstractfactory.For("yaml")
	if err != nil {
		fmt.Println(err)
		return
	}

	data, _ := f.NewEncoder().Encode(job{Name: "cleanup", Count: 3})
	fmt.Print(string(data))

	var out job
	_ = f.NewDecoder().Decode(data, &out)
	fmt.Println(out.Name, out.Count)
	// Output:
	// name: cleanup
	// count: 3
	// cleanup 3
}
