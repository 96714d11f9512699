package main

import "resumedit/cmd/resumedit-cli/cmd"

func main() {
	cmd.Execute()
}
