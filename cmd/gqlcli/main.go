package main

import "github.com/mcoot/graphql-demo-go/internal/cli"

func main() {
	cli.Execute()
}
