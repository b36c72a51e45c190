package main

import "interior-billing/go_backend/internal/app"

func main() {
	app.Run()
}
