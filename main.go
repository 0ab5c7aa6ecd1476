package main

import "github.com/theirongolddev/budgetcut/cmd"

func main() {
	cmd.Execute()
}
