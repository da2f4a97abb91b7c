// Command spacetime builds FRW metric tensors and renders them as plain
// text, LaTeX or an interactive terminal view.
package main

import "github.com/katalvlaran/spacetime/cmd"

func main() {
	cmd.Execute()
}
