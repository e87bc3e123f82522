package main

import (
	"github.com/humanbelnik/fakeartist/core/internal/app"
	"github.com/humanbelnik/fakeartist/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
