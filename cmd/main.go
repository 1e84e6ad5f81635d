package main

import (
	cmd "github.com/kerbaras/quotes/cmd/quotes"
)

func main() {
	cmd.Execute()
}
