package bubble_test

import (
	"fmt"

	"github.com/npillmayer/bubble"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func Example() {
	gtrace.CoreTracer = gologadapter.New()
	b, err := bubble.New[int](5)
	if err != nil {
		panic(err)
	}
	b.Insert(-50, -20, 0, 20, 50)
	fmt.Println(b.Phase(), b.Len())
	b.Insert(35, 30, 38, 36, 45, 22)
	fmt.Println(b.Phase(), b.Len())
	fmt.Println(b.Search(38), b.Search(37))
	b.Remove(20)
	fmt.Println(b.Key(3), b.At(3))
	// Output:
	// filling 5
	// saturated 11
	// true false
	// 35 [22 30 36 38 45]
}

func ExampleBubble_Assign() {
	gtrace.CoreTracer = gologadapter.New()
	small, _ := bubble.New[string](2)
	small.Insert("a", "b", "c")
	large, _ := bubble.New[string](3)
	err := large.Assign(small)
	fmt.Println(err)
	fmt.Println(large.Len(), large.ArraySize())
	// Output:
	// bubble: capacity mismatch
	// 0 3
}
