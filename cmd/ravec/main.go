// Command ravec is a small driver for the Rave front-end type core: it
// loads a module descriptor, registers the struct declarations found in a
// directory of test fixtures, and reports what the struct resolver makes of
// each one.
package main

func main() {
	Execute()
}
