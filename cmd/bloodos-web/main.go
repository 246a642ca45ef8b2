// Command bloodos-web serves emulated consoles over WebSocket: one machine
// per connection. Clients send JSON input messages and receive a styled
// snapshot frame after every event.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	bloodos "github.com/bloodos/go-bloodos"
)

var addr = flag.String("addr", ":8080", "http service address")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for demo
	},
}

// inputMessage is what a client sends: either text to type through the
// keymap, or one raw scancode to press.
type inputMessage struct {
	Type string `json:"type"` // "text" or "scancode"
	Data string `json:"data,omitempty"`
	Code byte   `json:"code,omitempty"`
}

// frameMessage is what the server sends back after every input.
type frameMessage struct {
	Type     string            `json:"type"`
	Snapshot *bloodos.Snapshot `json:"snapshot"`
}

func handleConsole(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	con := bloodos.New()
	con.Boot()

	log.Printf("New console session: %s", r.RemoteAddr)

	sendFrame := func() error {
		return conn.WriteJSON(frameMessage{
			Type:     "frame",
			Snapshot: con.Snapshot(bloodos.SnapshotDetailStyled),
		})
	}

	if err := sendFrame(); err != nil {
		log.Printf("WebSocket write error: %v", err)
		return
	}

	for {
		var msg inputMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		switch msg.Type {
		case "text":
			con.Machine().Type(msg.Data)
		case "scancode":
			con.Machine().Press(msg.Code)
		}

		if err := sendFrame(); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}

		switch con.Machine().Power() {
		case bloodos.PowerReset:
			// Reboot in place: a fresh machine behind the same socket.
			log.Printf("Console reboot: %s", r.RemoteAddr)
			con = bloodos.New()
			con.Boot()
			if err := sendFrame(); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}
		case bloodos.PowerOff:
			log.Printf("Console powered off: %s", r.RemoteAddr)
			return
		}
	}
}

func main() {
	flag.Parse()

	http.HandleFunc("/console", handleConsole)

	// Handle graceful shutdown
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	log.Printf("Server starting on http://localhost%s", *addr)
	log.Printf("WebSocket endpoint: ws://localhost%s/console", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
