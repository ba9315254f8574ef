package main

import (
	"github.com/yeisme/linelens/cmd"
)

func main() {
	cmd.Execute()
}
