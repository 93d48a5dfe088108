// Package server is the board share service: editors publish their exported
// board documents into a named room over a websocket, every other connection
// in the room receives the latest document. Published documents are decoded
// before they are accepted, a malformed board never reaches the viewers.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/Lireer/ricochet-robot-solver/editor"
)

type BoardServer struct {
	Rooms        map[string]*Room
	RoomRequests chan RoomRequest
	Upgrader     *websocket.Upgrader
}

type RoomRequest struct {
	Name  string
	Reply chan *Room
}

// Room holds one shared board. All room state is owned by its Loop
// goroutine; connections talk to it through the channels only.
type Room struct {
	Name      string
	Joins     chan *Client
	Leaves    chan *Client
	Publishes chan Publish
}

type Publish struct {
	From     *Client
	Document []byte
}

// Client is one websocket connection. Send is drained by the connection's
// write loop; the room drops messages for clients that fall behind.
type Client struct {
	Conn *websocket.Conn
	Send chan ServerMessage
}

func NewBoardServer() *BoardServer {
	return &BoardServer{
		Rooms:        make(map[string]*Room),
		RoomRequests: make(chan RoomRequest),
		Upgrader:     &websocket.Upgrader{},
	}
}

func NewRoom(name string) *Room {
	return &Room{
		Name:      name,
		Joins:     make(chan *Client),
		Leaves:    make(chan *Client),
		Publishes: make(chan Publish),
	}
}

// Loop serves room lookups, creating rooms on first use.
func (s *BoardServer) Loop() {
	log.Info("BoardServer.Loop starting")
	for req := range s.RoomRequests {
		room, ok := s.Rooms[req.Name]
		if !ok {
			log.Infof("creating room %q", req.Name)
			room = NewRoom(req.Name)
			go room.Loop()
			s.Rooms[req.Name] = room
		}
		req.Reply <- room
	}
}

// Loop owns the room: the client set and the latest published document.
func (r *Room) Loop() {
	clients := make(map[*Client]struct{})
	var latest []byte
	for {
		select {
		case c := <-r.Joins:
			clients[c] = struct{}{}
			log.Infof("room %q: join, %d clients", r.Name, len(clients))
			if latest != nil {
				c.send(ServerMessage{Kind: KindBoard, Board: latest})
			}
		case c := <-r.Leaves:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				close(c.Send)
			}
			log.Infof("room %q: leave, %d clients", r.Name, len(clients))
		case p := <-r.Publishes:
			latest = p.Document
			for c := range clients {
				if c == p.From {
					continue
				}
				c.send(ServerMessage{Kind: KindBoard, Board: latest})
			}
		}
	}
}

func (c *Client) send(msg ServerMessage) {
	select {
	case c.Send <- msg:
	default:
		log.Warn("dropping message for slow client")
	}
}

func (c *Client) writeLoop() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			log.Warnf("write: %v", err)
			return
		}
	}
}

// HandleWS upgrades the connection and joins it to the room named in the
// route, then pumps publishes until the connection dies.
func (s *BoardServer) HandleWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := way.Param(r.Context(), "room")
		reply := make(chan *Room)
		s.RoomRequests <- RoomRequest{Name: name, Reply: reply}
		room := <-reply

		conn, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		client := &Client{Conn: conn, Send: make(chan ServerMessage, 8)}
		room.Joins <- client
		go client.writeLoop()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				room.Leaves <- client
				return
			}
			var msg ClientMessage
			if err := json.Unmarshal(data, &msg); err != nil || msg.Kind != KindPublish {
				client.send(ServerMessage{Kind: KindError, Error: "expected a publish message"})
				continue
			}
			if _, _, err := editor.Decode(string(msg.Board)); err != nil {
				log.Warnf("room %q: rejected publish: %v", name, err)
				client.send(ServerMessage{Kind: KindError, Error: err.Error()})
				continue
			}
			room.Publishes <- Publish{From: client, Document: msg.Board}
		}
	}
}
