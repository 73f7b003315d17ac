package main

import "github.com/Hambart471/caltrack/cmd"

func main() {
	cmd.Execute()
}
