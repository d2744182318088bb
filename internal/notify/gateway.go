// SPDX-License-Identifier: Apache-2.0

// Package notify models the host platform's local-notification surface.
//
// The [Gateway] abstraction mirrors how the platform behaves: the app asks it
// to display an alert now, and much later — out of band — the platform
// reports that the user tapped one, carrying back the same opaque payload.
// The package also owns the payload shape and the response router that turns
// a tapped payload into a navigation target.
package notify

import (
	"context"
)

//go:generate mockgen -source=gateway.go -destination=../mock/gateway_mock.go -package=mock

// Gateway accepts "show now" requests and delivers "user tapped" events.
// Implementations are owned by the host surface (the terminal UI here); the
// feed engine only ever sees this interface.
type Gateway interface {
	// Display shows a notification with the given title and body, attaching
	// payload so a later tap can be routed. A failed display is acceptable
	// loss: callers log and move on, they never retry.
	Display(ctx context.Context, title, body string, payload Payload) error

	// Responses returns the channel on which tapped-notification payloads
	// arrive, asynchronously and out of band with respect to Display.
	Responses() <-chan Payload
}

// Notification is a displayed alert held by [LocalGateway] until the host
// surface consumes it.
type Notification struct {
	Title   string
	Body    string
	Payload Payload
}

// LocalGateway is the in-process [Gateway] used by the terminal UI: displayed
// notifications land on a buffered channel the UI renders as banners, and the
// UI feeds taps back through Tap.
type LocalGateway struct {
	displays  chan Notification
	responses chan Payload
}

// NewLocalGateway creates a gateway whose channels buffer up to size entries.
// Both Display and Tap drop on a full buffer instead of blocking: a lost
// banner is preferable to a stalled sync cycle.
func NewLocalGateway(size int) *LocalGateway {
	if size <= 0 {
		size = 16
	}
	return &LocalGateway{
		displays:  make(chan Notification, size),
		responses: make(chan Payload, size),
	}
}

// Display implements [Gateway].
func (g *LocalGateway) Display(ctx context.Context, title, body string, payload Payload) error {
	select {
	case g.displays <- Notification{Title: title, Body: body, Payload: payload}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrGatewayBusy
	}
}

// Displays returns the channel of pending notifications for the host surface
// to render.
func (g *LocalGateway) Displays() <-chan Notification {
	return g.displays
}

// Tap reports that the user acted on a displayed notification. The payload is
// delivered on Responses; a full buffer drops the tap.
func (g *LocalGateway) Tap(payload Payload) {
	select {
	case g.responses <- payload:
	default:
	}
}

// Responses implements [Gateway].
func (g *LocalGateway) Responses() <-chan Payload {
	return g.responses
}
