//go:build tinygo

package main

import (
	"context"

	"lt24/app"
	"lt24/hal"
)

func main() {
	h := hal.New()
	if err := app.Run(context.Background(), h, app.Config{}); err != nil {
		h.Logger().WriteLineString(err.Error())
	}
	select {}
}
