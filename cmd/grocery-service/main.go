package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/sharmaeishan/Grocery-list-Manager/groceryservice"
)

func main() {
	if err := groceryservice.Run(); err != nil {
		log.Error().Err(err).Msg("grocery-service exited with error")
		os.Exit(1)
	}
}
