package main

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/Lireer/ricochet-robot-solver/server"
)

// publish pushes an exported board document to the share server and closes
// the connection again. Runs off the frame loop.
func publish(cfg Config, document string) {
	url := cfg.ServerURL + "/boards/" + cfg.Room
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Warnf("publish: %v", err)
		return
	}
	defer conn.Close()

	msg := server.ClientMessage{Kind: server.KindPublish, Board: json.RawMessage(document)}
	if err := conn.WriteJSON(msg); err != nil {
		log.Warnf("publish: %v", err)
		return
	}
	log.Infof("published board to room %q", cfg.Room)
}
