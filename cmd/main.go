package main

import (
	"os"

	"github.com/ghada1234/nutritrack/config"
	"github.com/ghada1234/nutritrack/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
