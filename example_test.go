package dubloom_test

import (
	"fmt"

	"github.com/jcalabro/dubloom"
)

// This example demonstrates basic membership testing.
func Example() {
	// 4096 bits, 5 probe positions per item
	f, _ := dubloom.New(4096, 5)

	f.Insert([]byte("apple"))
	f.Insert([]byte("banana"))

	fmt.Println("apple:", f.MightContain([]byte("apple")))
	fmt.Println("banana:", f.MightContain([]byte("banana")))
	fmt.Println("grape:", f.MightContain([]byte("grape")))

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows sizing a filter from an expected item count and a target
// false positive rate. The derived parameters stay visible to the caller.
func ExampleNewWithEstimates() {
	f, _ := dubloom.NewWithEstimates(1000, 0.01)

	fmt.Printf("m=%d bits, k=%d\n", f.M(), f.K())

	// Output:
	// m=9586 bits, k=7
}

func ExampleOptimalParams() {
	// Inspect the translation without building a filter.
	m, k := dubloom.OptimalParams(1000, 0.01)

	fmt.Printf("m=%d bits, k=%d\n", m, k)

	// Output:
	// m=9586 bits, k=7
}

// This example screens words against a deny list of strings.
func Example_denyList() {
	denied := []string{"crash", "panic", "segfault"}

	f, _ := dubloom.New(2048, 5)
	for _, w := range denied {
		f.InsertString(w)
	}

	for _, w := range []string{"panic", "puppies"} {
		if f.MightContainString(w) {
			fmt.Println(w, "=> possibly denied, check the real list")
		} else {
			fmt.Println(w, "=> definitely fine")
		}
	}

	// Output:
	// panic => possibly denied, check the real list
	// puppies => definitely fine
}
