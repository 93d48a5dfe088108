package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/Lireer/ricochet-robot-solver/server"
)

type Server struct {
	router      *way.Router
	BoardServer *server.BoardServer
}

func main() {
	s := Server{
		BoardServer: server.NewBoardServer(),
	}
	go s.BoardServer.Loop()
	s.routes()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, s.router))
}
