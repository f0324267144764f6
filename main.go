package main

import "github.com/ngld/knossos/packages/bootstrap-tools/cmd"

func main() {
	cmd.Execute()
}
