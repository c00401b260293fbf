// Public domain.

package main

import "github.com/soniakeys/varphot/internal/vpprog"

func main() {
	vpprog.Main()
}
