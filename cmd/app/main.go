package main

import (
	"github.com/sarahjlfoster/sample-qdev-movies/internal/app"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/config"
)

func main() {
	app.Go(config.Load())
}
