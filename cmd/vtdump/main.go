package main

import "github.com/hnimtadd/vtwire/cmd/vtdump/cmd"

func main() {
	cmd.Execute()
}
