package main

import (
	"bidfield/internal/app"
)

func main() {
	app.Run()
}
