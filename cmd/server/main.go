package main

import (
	"log"
	"net"

	"github.com/fatih/color"

	"github.com/minhqn/chessvoice/pkg"
)

func main() {
	cfg, err := pkg.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	pkg.InitLog(cfg.LogPath, "SERVER: ")
	log.Println("Server started")

	s := pkg.NewServer(cfg)
	go s.CleanIdleMatches()

	listener, err := net.Listen("tcp", cfg.ServerPort)
	if err != nil {
		log.Panic(err)
	}
	defer listener.Close()

	color.Green("chessvoice server up")
	color.Cyan("  tcp %s", cfg.ServerPort)
	color.Cyan("  ssh %s", cfg.SshPort)
	log.Printf("Listening at port %s", cfg.ServerPort)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("Failed to accept: %v", err)
			continue
		}
		go s.HandleConn(conn)
	}
}
