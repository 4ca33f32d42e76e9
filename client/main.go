// Interactive test client. Commands:
//
//	join <gameId> <playerId> <name> <tic-tac-toe|connect-four>
//	ttt <gameId> <position>
//	c4 <gameId> <column>
//	top
//	quit
package main

import (
	"bufio"
	"encoding/json"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
)

type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

func send(c *websocket.Conn, event string, data interface{}) error {
	return c.WriteJSON(envelope{Event: event, Data: data})
}

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	u := url.URL{Scheme: "ws", Host: "localhost:5000", Path: "/ws"}
	log.Printf("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			var pretty map[string]json.RawMessage
			if err := json.Unmarshal(message, &pretty); err != nil {
				log.Printf("<- %s", message)
				continue
			}
			log.Printf("<- %s %s", pretty["event"], pretty["data"])
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "join":
			if len(fields) < 5 {
				log.Println("usage: join <gameId> <playerId> <name> <gameType>")
				continue
			}
			err = send(c, "join-game", map[string]string{
				"gameId":     fields[1],
				"playerId":   fields[2],
				"playerName": fields[3],
				"gameType":   fields[4],
			})
		case "ttt":
			if len(fields) < 3 {
				log.Println("usage: ttt <gameId> <position>")
				continue
			}
			pos, _ := strconv.Atoi(fields[2])
			err = send(c, "ttt-move", map[string]interface{}{
				"gameId":   fields[1],
				"position": pos,
			})
		case "c4":
			if len(fields) < 3 {
				log.Println("usage: c4 <gameId> <column>")
				continue
			}
			col, _ := strconv.Atoi(fields[2])
			err = send(c, "c4-move", map[string]interface{}{
				"gameId": fields[1],
				"column": col,
			})
		case "top":
			err = send(c, "get-leaderboard", nil)
		case "quit":
			c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			<-done
			return
		default:
			log.Printf("Unknown command %q", fields[0])
			continue
		}
		if err != nil {
			log.Printf("Send failed: %v", err)
			return
		}

		select {
		case <-interrupt:
			return
		default:
		}
	}
}
