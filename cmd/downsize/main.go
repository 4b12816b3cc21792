// Command downsize reorders JSON fields for better gzip compression.
package main

import "github.com/KimNorgaard/go-downsize/internal/cli"

func main() {
	cli.Execute()
}
