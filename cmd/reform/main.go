// Package main provides the reform CLI: serve a form over HTTP, render its
// markup or fill it in from the terminal.
package main

func main() {
	Execute()
}
