// Package clock provides a wall clock that can be replaced with a fixed one in tests.
package clock

import "time"

type Clock struct {
	loc *time.Location
}

func New() *Clock {
	return &Clock{}
}

// NewWithLocation returns a clock reporting time in loc, e.g. time.UTC.
func NewWithLocation(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	now := time.Now()
	if c.loc != nil {
		now = now.In(c.loc)
	}
	return now
}

type Mock struct {
	value func() time.Time
}

func NewMock(value time.Time) *Mock {
	m := &Mock{}
	m.Set(value)
	return m
}

func NewMockF(value func() time.Time) *Mock {
	return &Mock{
		value: value,
	}
}

func (m *Mock) Now() time.Time {
	return m.value()
}

func (m *Mock) Set(t time.Time) {
	m.value = func() time.Time {
		return t
	}
}

func (m *Mock) SetF(value func() time.Time) {
	m.value = value
}

// Advance moves the mocked time forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.Set(m.value().Add(d))
}
