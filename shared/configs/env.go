package configs

import "os"

var Envs = struct {
	PORT            string
	FRONTEND_ORIGIN string
	ALLOWED_ORIGINS string
	GIN_MODE        string
}{
	PORT:            os.Getenv("PORT"),
	FRONTEND_ORIGIN: os.Getenv("FRONTEND_ORIGIN"),
	ALLOWED_ORIGINS: os.Getenv("ALLOWED_ORIGINS"),
	GIN_MODE:        os.Getenv("GIN_MODE"),
}
