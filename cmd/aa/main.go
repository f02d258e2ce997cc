package main

import "github.com/Shubham12sharma/Assign-Alert/cmd/aa/root"

func main() {
	root.Execute()
}
