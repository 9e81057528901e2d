package feed

import (
	"context"
	"io"
	stdlog "log"
	"strings"

	"github.com/grovetools/masonry/errors"
	"github.com/grovetools/masonry/logging"
	"github.com/hpcloud/tail"
)

// FollowOptions controls how an event file is read.
type FollowOptions struct {
	// Follow keeps reading as the file grows. Without it Follow returns at EOF.
	Follow bool
	// FromEnd skips events already in the file.
	FromEnd bool
}

// Follow reads JSON-lines events from path and calls handler for each state
// change. Blank lines are ignored and malformed lines are logged and skipped.
func Follow(ctx context.Context, path string, opts FollowOptions, handler Handler) error {
	logger := logging.NewLogger("feed")

	whence := io.SeekStart
	if opts.FromEnd {
		whence = io.SeekEnd
	}
	t, err := tail.TailFile(path, tail.Config{
		Follow:    opts.Follow,
		ReOpen:    opts.Follow,
		MustExist: true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: whence},
		Logger:    stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return errors.FeedFailed(path, err)
	}
	defer t.Cleanup()

	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				if err := t.Wait(); err != nil {
					return errors.FeedFailed(path, err)
				}
				return nil
			}
			if line.Err != nil {
				logger.WithError(line.Err).Warn("Failed to read event line")
				continue
			}
			text := strings.TrimSpace(line.Text)
			if text == "" {
				continue
			}
			ev, ok, err := DecodeEvent([]byte(text))
			if err != nil {
				logger.WithError(err).Warn("Skipping malformed event line")
				continue
			}
			if ok {
				handler(ev)
			}
		}
	}
}
