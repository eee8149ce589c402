package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"wordrush.gg/wordrush/internal/board"
	"wordrush.gg/wordrush/internal/game"
	ebitenrender "wordrush.gg/wordrush/internal/render/ebiten"
	"wordrush.gg/wordrush/internal/selection"
	"wordrush.gg/wordrush/internal/ui/menu"
)

func main() {
	// .env is optional; it only exists in development checkouts.
	_ = godotenv.Load()

	log := newLogger()

	screenWidth := envInt("WORDRUSH_WIDTH", 960)
	screenHeight := envInt("WORDRUSH_HEIGHT", 640)

	// Selection tuning: defaults unless a tuning file is pointed at.
	tuning := selection.DefaultConfig()
	if path := os.Getenv("WORDRUSH_TUNING"); path != "" {
		cfg, err := selection.LoadConfig(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load tuning")
		}
		tuning = cfg
		log.Info().Str("path", path).Msg("loaded tuning")
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Scan the data directory for board files.
	boardsDir := envStr("WORDRUSH_BOARDS", "data/boards")
	boards, err := board.ScanDir(boardsDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", boardsDir).Msg("failed to scan boards")
	}
	log.Info().Int("count", len(boards)).Str("dir", boardsDir).Msg("boards discovered")

	// Create the main menu and the game manager.
	mainMenu := menu.New(boards, renderer, inputMgr, screenWidth, screenHeight)
	manager := game.NewManager(renderer, inputMgr, tuning, screenWidth, screenHeight, log)
	manager.SetMainMenu(mainMenu)

	// Set up the window.
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("WordRush")
	engine.SetWindowResizable(true)

	log.Info().Msg("starting game")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if s := os.Getenv("WORDRUSH_LOG"); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			level = l
		}
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
