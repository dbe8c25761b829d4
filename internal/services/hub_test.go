package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
)

func testState(content string) PresentationState {
	return PresentationState{
		Slides: []models.Slide{{
			ID:              "s1",
			BackgroundColor: models.DefaultBackground,
			Elements: []models.SlideElement{
				{ID: "e1", Type: models.ElementText, X: 10, Y: 10, Width: 200, Height: 40, Content: content},
			},
		}},
		CurrentSlideID: "s1",
		Loaded:         true,
	}
}

// registerTestClient returns once the hub has taken ownership of the client
func registerTestClient(h *Hub) *Client {
	c := &Client{hub: h, send: make(chan []byte, 16)}
	h.register <- c
	return c
}

func receiveFrame(t *testing.T, c *Client) StateMessage {
	t.Helper()
	select {
	case data, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed before a frame arrived")
		}
		var msg StateMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("decode frame: %v", err)
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}
	return StateMessage{}
}

func frameContent(t *testing.T, msg StateMessage) string {
	t.Helper()
	if msg.Type != "presentation" {
		t.Fatalf("frame type = %q, want presentation", msg.Type)
	}
	if len(msg.Payload.Slides) != 1 || len(msg.Payload.Slides[0].Elements) != 1 {
		t.Fatalf("unexpected frame payload: %+v", msg.Payload)
	}
	return msg.Payload.Slides[0].Elements[0].Content
}

func TestHubBroadcastsToEveryClient(t *testing.T) {
	h := NewHub()
	go h.Run()

	a := registerTestClient(h)
	b := registerTestClient(h)

	h.BroadcastState(testState("hello"))

	for _, c := range []*Client{a, b} {
		if got := frameContent(t, receiveFrame(t, c)); got != "hello" {
			t.Errorf("frame content = %q, want hello", got)
		}
	}
}

func TestHubReplaysLatestStateToLateClient(t *testing.T) {
	h := NewHub()
	go h.Run()

	first := registerTestClient(h)
	h.BroadcastState(testState("before"))
	if got := frameContent(t, receiveFrame(t, first)); got != "before" {
		t.Fatalf("frame content = %q, want before", got)
	}

	h.BroadcastState(testState("after"))
	if got := frameContent(t, receiveFrame(t, first)); got != "after" {
		t.Fatalf("frame content = %q, want after", got)
	}

	// a client that connects now gets the latest frame without a mutation
	late := registerTestClient(h)
	if got := frameContent(t, receiveFrame(t, late)); got != "after" {
		t.Errorf("replayed frame content = %q, want after", got)
	}
}

func TestHubDropsClientThatStopsReading(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := registerTestClient(h)

	// one more broadcast than the client can buffer
	for i := 0; i <= cap(c.send); i++ {
		h.BroadcastState(testState("x"))
	}

	deadline := time.After(2 * time.Second)
	received := 0
	for {
		select {
		case _, ok := <-c.send:
			if !ok {
				if received != cap(c.send) {
					t.Fatalf("received %d frames before the drop, want %d", received, cap(c.send))
				}
				return
			}
			received++
		case <-deadline:
			t.Fatal("send channel never closed for the stalled client")
		}
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := registerTestClient(h)
	h.unregister <- c

	if _, ok := <-c.send; ok {
		t.Fatal("send channel still open after unregister")
	}
}
