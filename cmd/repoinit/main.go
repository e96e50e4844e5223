package main

import "github.com/sruddy1/ir-pipeline-template/internal/cli"

func main() {
	cli.Execute()
}
