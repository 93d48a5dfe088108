package main

import (
	"github.com/matryer/way"
)

const URI_BOARDS = "/boards/:room"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_BOARDS, s.BoardServer.HandleWS())
}
