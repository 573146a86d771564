package main

import "github.com/jensneuse/graphql-colocate/cmd"

func main() {
	cmd.Execute()
}
