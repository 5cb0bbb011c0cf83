package logic

import (
	"fedi_deck/shared"
	"github.com/gorilla/websocket"
	"net/http"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_stream_dialer.go -package mocks fedi_deck/logic IStreamDialer,IStreamConn

const handshakeTimeoutSec = 10

// StreamCallbacks is the callback set a dialed connection reports into.
// OnOpen fires once before Dial returns; OnClose fires exactly once when
// the connection is gone, whether it dropped or was closed locally.
type StreamCallbacks struct {
	OnOpen    func()
	OnMessage func(data []byte)
	OnError   func(err error)
	OnClose   func()
}

type IStreamConn interface {
	Close()
}

// IStreamDialer opens one persistent streaming connection. Any transport
// satisfying this shape is interchangeable as far as the engine cares.
type IStreamDialer interface {
	Dial(urlStr string, cb StreamCallbacks) (IStreamConn, error)
}

type wsDialer struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
}

func NewWsDialer(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) IStreamDialer {
	return &wsDialer{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
	}
}

type wsConn struct {
	conn *websocket.Conn
}

func (wc *wsConn) Close() {
	_ = wc.conn.Close()
}

func (d *wsDialer) Dial(urlStr string, cb StreamCallbacks) (IStreamConn, error) {

	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeoutSec * time.Second,
	}
	hdr := http.Header{}
	d.userAgent.AddUserAgent(&http.Request{Header: hdr})

	conn, _, err := dialer.Dial(urlStr, hdr)
	if err != nil {
		return nil, err
	}

	res := &wsConn{conn: conn}
	if cb.OnOpen != nil {
		cb.OnOpen()
	}
	go d.readLoop(conn, cb)
	return res, nil
}

func (d *wsDialer) readLoop(conn *websocket.Conn, cb StreamCallbacks) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				if cb.OnError != nil {
					cb.OnError(err)
				}
			}
			_ = conn.Close()
			if cb.OnClose != nil {
				cb.OnClose()
			}
			return
		}
		if cb.OnMessage != nil {
			cb.OnMessage(data)
		}
	}
}
