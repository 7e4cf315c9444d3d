// Package session carries the anonymous wheel-session identity.
//
// Anonymous visitors generate a session UUID once per browser and send it on
// every request; the pending-spin holding table is keyed by it. The value is
// resolved once per request by middleware and passed explicitly, never read
// from ambient state.
package session

import (
	"github.com/google/uuid"
)

type Context struct {
	id uuid.UUID
}

func New(id uuid.UUID) Context {
	return Context{id: id}
}

func Parse(s string) (Context, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Context{}, err
	}
	return Context{id: id}, nil
}

func (c Context) ID() uuid.UUID {
	return c.id
}

func (c Context) IsZero() bool {
	return c.id == uuid.Nil
}

func (c Context) String() string {
	return c.id.String()
}
