// Package main provides the autograd CLI.
package main

func main() {
	Execute()
}
