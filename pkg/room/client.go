package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"pokervm/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	address   string
	tableUUID string
}

// NewClient returns a new client object for the player at address
func NewClient(conn *websocket.Conn, address string, tableUUID string) *Client {
	return &Client{
		send:      make(chan interface{}, 256),
		Close:     make(chan string),
		Conn:      conn,
		address:   address,
		tableUUID: tableUUID,
	}
}

// Send send a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Address returns the player address the client acts for
func (c *Client) Address() string {
	return c.address
}

// String returns a traceable identifier for the player and table
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.address, c.tableUUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
