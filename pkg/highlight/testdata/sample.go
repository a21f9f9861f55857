package sample

import "fmt"

// Greet returns a greeting.
func Greet(name string) string {
	if name == "" {
		return "hello, world"
	}
	return fmt.Sprintf("hello, %s\n", name)
}
