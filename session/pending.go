package session

import "realtyhub/models"

// Pending is the handle of an in-flight sign-in or sign-up. The manager
// keeps reporting StatusPending until the handle resolves.
type Pending struct {
	done    chan struct{}
	session models.Session
	err     error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) resolve(s models.Session, err error) {
	p.session, p.err = s, err
	close(p.done)
}

// Done is closed once the attempt has completed.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Resolved reports whether the attempt has completed.
func (p *Pending) Resolved() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the attempt completes and returns its outcome.
func (p *Pending) Wait() (models.Session, error) {
	<-p.done
	return p.session, p.err
}
