package main

import "github.com/user/songdb/cmd"

func main() {
	cmd.Execute()
}
