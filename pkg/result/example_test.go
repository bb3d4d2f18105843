package result_test

import (
	"errors"
	"fmt"

	"github.com/leonardoraele/result/pkg/fault"
	"github.com/leonardoraele/result/pkg/result"
)

func ExampleWrap2() {
	divide := result.Wrap2(func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("Cannot divide by zero.")
		}
		return a / b, nil
	})

	fmt.Println(divide(10, 2).Rescue())

	annotated := divide(10, 0).MapErr(func(f *fault.Fault) *fault.Fault {
		return f.Causes("Division error.")
	})
	fmt.Println(annotated.Err())
	// Output:
	// 5
	// Division error.: Cannot divide by zero.
}

func ExampleAttempt() {
	r := result.Attempt(func() (int, error) {
		return 10 / 2, nil
	})

	fmt.Println(r.IsOk(), r.Value())
	// Output: true 5
}

func ExampleIfTruthy() {
	name := ""
	r := result.IfTruthy(name).Or(result.Ok("anonymous"))

	fmt.Println(r.Value())
	// Output: anonymous
}

func ExampleResult_RescueWith() {
	r := result.Err[int]("lookup failed")

	fmt.Println(r.RescueWith(func(f *fault.Fault) int { return -1 }))
	// Output: -1
}
