// Command roofcms runs the CMS backend for the UpRoof marketing site.
// All configuration comes from environment variables, optionally loaded
// from a .env file in the working directory.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/uproof/roofcms"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	app, err := roofcms.New(roofcms.ConfigFromEnv())
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("roofcms listening on %s", app.Config.Addr)
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
