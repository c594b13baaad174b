// The main package for the fws-scraper executable.
package main

import (
	"github.com/LaurenceW01/harris-county-fws-scraper/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
