package main

import "github.com/0glabs/zk-cli/cmd"

func main() {
	cmd.Execute()
}
