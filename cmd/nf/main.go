package main

import "neurofocus/cmd/nf/root"

func main() {
	root.Execute()
}
