package broadcast

import (
	"context"
	"fmt"

	"github.com/go-zeromq/zmq4"
)

// zmqPublisher publishes cell-changed notifications over a ZeroMQ PUB
// socket as two-frame messages: a "cell.<A1>" topic frame (so
// subscribers can filter by address) followed by the displayed value,
// grounded on broyeztony-karl/kernel/kernel.go's zmq4.NewPub/Listen/
// NewMsgFrom usage (SPEC_FULL.md §11.2). go-zeromq/goczmq/v4 is pulled
// in transitively by zmq4 and never imported here directly.
type zmqPublisher struct {
	sock zmq4.Socket
}

func newZMQPublisher(addr string) (*zmqPublisher, error) {
	sock := zmq4.NewPub(context.Background())
	if err := sock.Listen(addr); err != nil {
		return nil, fmt.Errorf("broadcast: zmq listen %s: %w", addr, err)
	}
	return &zmqPublisher{sock: sock}, nil
}

func (p *zmqPublisher) Publish(address, value string) {
	topic := "cell." + address
	msg := zmq4.NewMsgFrom([]byte(topic), []byte(value))
	_ = p.sock.Send(msg)
}

func (p *zmqPublisher) Close() {
	_ = p.sock.Close()
}
