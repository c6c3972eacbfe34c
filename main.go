package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/tombdereus/gimcana-api/cmd/app"
)

// @contact.name   El Tomb de Reus
// @contact.url    https://eltombdereus.com
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
