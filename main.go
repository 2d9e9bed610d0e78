package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rpnpad/audio"
	"github.com/lixenwraith/rpnpad/engine"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Audio init failure is non-fatal, the pad runs silent
	player, _ := audio.NewPlayer()

	ctx := engine.NewContext(screen, player)
	defer ctx.Shutdown()

	// Interrupt restores the terminal and unblocks the event loop
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		ctx.Shutdown()
	}()

	ctx.Run()
}
