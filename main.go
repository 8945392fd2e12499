package main

import "github.com/mj1618/eve-ui-reader/cmd"

func main() {
	cmd.Execute()
}
