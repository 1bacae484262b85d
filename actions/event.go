package actions

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/multierr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is the payload of the event that triggered a workflow run. Only the
// fields used by this program are decoded.
type Event struct {
	PullRequest *EventPullRequest `json:"pull_request"`
}

// EventPullRequest is the pull request attached to pull_request and
// pull_request_review events.
type EventPullRequest struct {
	Number int `json:"number"`
}

// PullRequestNumber returns the number of the pull request that triggered
// the event, if any.
func (e *Event) PullRequestNumber() (number int, ok bool) {
	if e == nil || e.PullRequest == nil || e.PullRequest.Number <= 0 {
		return 0, false
	}
	return e.PullRequest.Number, true
}

// ReadEvent reads the event payload at the given path.
//
// An empty path or a path that does not exist yields an empty Event: the
// program is then not running for a pull request. A payload that cannot be
// decoded is an error.
func ReadEvent(path string) (_ *Event, err error) {
	if path == "" {
		return &Event{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Event{}, nil
		}
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return DecodeEvent(f)
}

// DecodeEvent decodes an event payload.
func DecodeEvent(r io.Reader) (*Event, error) {
	var ev Event
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return nil, fmt.Errorf("failed to decode event payload: %v", err)
	}
	return &ev, nil
}
