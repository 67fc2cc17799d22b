package cli

import (
	"fmt"
	"sync"
)

// chain runs handlers one at a time, advancing only when a handler calls its [Next].
type chain struct {
	session  *Session
	handlers []Handler
	pos      int // pos is the index of the next handler allowed to run, so no handler runs twice.
}

func runChain(s *Session, handlers []Handler) error {
	c := &chain{session: s, handlers: handlers}
	return c.step(0)
}

func (c *chain) step(i int) error {
	if i >= len(c.handlers) || i < c.pos {
		return nil
	}
	c.pos = i + 1
	if err := c.session.Context().Err(); err != nil {
		return err
	}

	var (
		mux      sync.Mutex
		called   bool
		returned bool
	)
	next := func() error {
		mux.Lock()
		if returned {
			mux.Unlock()
			return ErrChainClosed
		}
		if called {
			mux.Unlock()
			return nil
		}
		called = true
		mux.Unlock()
		return c.step(i + 1)
	}
	defer func() {
		mux.Lock()
		returned = true
		mux.Unlock()
	}()
	return c.invoke(c.handlers[i], next)
}

func (c *chain) invoke(handler Handler, next Next) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in handler: %v", r)
		}
	}()
	return handler(c.session, next)
}
