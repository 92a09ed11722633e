package main

import "github.com/koki-develop/imglyph/cmd"

func main() {
	cmd.Execute()
}
