package main

import "github.com/lukejerome/viligant-tracker-dk/cmd/viligant"

func main() {
	viligant.Execute()
}
