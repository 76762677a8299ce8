package main

import (
	"flag"
	"log"

	"github.com/minhqn/chessvoice/pkg"
	"github.com/minhqn/chessvoice/pkg/gui"
)

func main() {
	cfg, err := pkg.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	matchName := flag.String("match", "", "match to join, empty for a fresh one")
	server := flag.String("server", "127.0.0.1"+cfg.ServerPort, "server address")
	logPath := flag.String("log", cfg.LogPath, "path to log file")
	flag.Parse()
	pkg.InitLog(*logPath, "CLIENT: ")
	log.Println("New Client")

	theme, err := gui.FindTheme(cfg.Theme)
	if err != nil {
		theme = gui.ThemeBasic
	}

	cl := pkg.NewClient(theme)
	cl.Connect(*server)
	go cl.HandleRead()
	go cl.HandleWrite()
	cl.Join(*matchName)

	if err := cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run(); err != nil {
		log.Fatal(err)
	}
	cl.Disconnect()
}
