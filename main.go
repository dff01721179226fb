package main

import "github.com/user/move-dataset-cli/cmd"

func main() {
	cmd.Execute()
}
