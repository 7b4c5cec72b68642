// Command chemicals manages laboratory chemical records from the shell.
package main

import "github.com/mesh-intelligence/chemicals/internal/cli"

func main() {
	cli.Execute()
}
