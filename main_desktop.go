//go:build !android

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/L1VER1337/block/internal/game"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}
	game.SetPlatform("desktop")
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
