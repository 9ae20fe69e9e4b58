package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/sudhirshivaram/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
