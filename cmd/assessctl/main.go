package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gummy1803-ai/assessment-system/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}
