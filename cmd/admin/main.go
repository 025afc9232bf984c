package main

import "github.com/L20660042/Backend-Proy-sub001/cmd/admin/cmd"

func main() {
	cmd.Execute()
}
