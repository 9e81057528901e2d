package feed

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/grovetools/masonry/errors"
	"github.com/grovetools/masonry/logging"
)

// Dial connects to a websocket state feed and calls handler for every state
// change until ctx is cancelled or the server closes the connection. A
// cancelled context is not an error.
func Dial(ctx context.Context, url string, header http.Header, handler Handler) error {
	logger := logging.NewLogger("feed")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return errors.FeedFailed(url, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			conn.Close()
		case <-done:
		}
	}()

	logger.WithField("url", url).Debug("Connected to state feed")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return errors.FeedFailed(url, err)
		}

		ev, ok, err := DecodeEvent(data)
		if err != nil {
			logger.WithError(err).Warn("Skipping malformed feed message")
			continue
		}
		if ok {
			handler(ev)
		}
	}
}
