// Command sanmei computes sexagenary birth charts and compatibility reports.
package main

import "github.com/mesh-intelligence/sanmei/internal/cli"

func main() {
	cli.Execute()
}
