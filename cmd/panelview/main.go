package main

import "github.com/pcbfab/panelview/cmd/panelview/cmd"

func main() {
	cmd.Execute()
}
