package main

import "github.com/Mohsinsiddi/tanglectl/cmd"

func main() {
	cmd.Execute()
}
