package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает .env и разбирает флаги процесса. Флаг -port имеет
// приоритет над переменной PORT из окружения.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var port string
	flag.StringVar(&port, "port", "", "HTTP port, overrides PORT from the environment")
	flag.Parse()

	if port == "" {
		return nil
	}
	if err := os.Setenv("PORT", port); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}
	return nil
}
