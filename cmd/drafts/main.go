package main

import "drafts/cmd/drafts/cmd"

func main() {
	cmd.Execute()
}
