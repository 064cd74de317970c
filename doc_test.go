package trie

import "fmt"

func Example() {
	t := New()
	t.Insert("car", "carpet", "cart", "dog")

	fmt.Println(t.SearchAll("car"))
	fmt.Println(t.Exists("car"), t.Exists("ca"))

	t.Delete("car")
	fmt.Println(t.Exists("car"), t.Exists("carpet"))

	// Output:
	// [car carpet cart]
	// true false
	// false true
}

func Example_fuzzy() {
	t := New().WithFuzzy().DefaultLevenshtein().CaseInsensitive()
	t.Insert("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")

	results := t.SearchAll("wdn")
	fmt.Println(results)

	results2 := t.SearchAll("tsd")
	fmt.Println(results2)

	// Output:
	// [Wednesday]
	// [Thursday Tuesday Wednesday]
}

func Example_metadata() {
	t := NewG[struct{ ID int }]()
	t.Insert("iPhone", struct{ ID int }{1})
	for _, hit := range t.SearchAll("iPhone") {
		fmt.Println(hit.Word, hit.Meta.ID)
	}
	// Output:
	// iPhone 1
}
