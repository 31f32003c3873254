package main

import (
	"socketCanvas/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
