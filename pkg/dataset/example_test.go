package dataset_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/periodix/pkg/dataset"
)

func ExampleBuiltin() {
	d := dataset.Builtin()
	fmt.Println("Records:", d.Len())
	fmt.Println("First:", d[0].Symbol, d[0].Column, d[0].Row)
	fmt.Println("Last:", d[d.Len()-1].Symbol, d[d.Len()-1].Column, d[d.Len()-1].Row)
	// Output:
	// Records: 118
	// First: H 1 1
	// Last: Og 18 7
}

func ExampleDataset_Take() {
	d, err := dataset.Builtin().Take(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range d {
		fmt.Println(r.Symbol, r.Name)
	}

	_, err = dataset.Builtin().Take(200)
	fmt.Println(err)
	// Output:
	// H Hydrogen
	// He Helium
	// Li Lithium
	// CONFIGURATION: dataset has 118 records, 200 requested
}

func ExampleDecode() {
	doc := `
elements:
  - {symbol: Fe, name: Iron, mass: "55.845", column: 8, row: 4}
`
	d, err := dataset.Decode(strings.NewReader(doc), dataset.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d[0].Symbol, d[0].Column, d[0].Row)
	// Output: Fe 8 4
}
