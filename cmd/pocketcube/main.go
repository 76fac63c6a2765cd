// pocketcube - shortest-route solver for the 2x2x2 pocket cube.
package main

import (
	"github.com/SeamusWaldron/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
