package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_BindLookupUnbind(t *testing.T) {
	t.Parallel()
	reg := newRegistry()
	alice := NewMockClient("alice")

	_, ok := reg.lookup(alice)
	assert.False(t, ok)

	reg.bind(alice, participant{id: "a", name: "Alice"})
	p, ok := reg.lookup(alice)
	assert.True(t, ok)
	assert.Equal(t, participant{id: "a", name: "Alice"}, p)
	assert.Equal(t, 1, reg.size())
	assert.True(t, reg.contains("a"))

	p, ok = reg.unbind(alice)
	assert.True(t, ok)
	assert.Equal(t, "a", p.id)
	assert.Equal(t, 0, reg.size())
	assert.False(t, reg.contains("a"))

	_, ok = reg.unbind(alice)
	assert.False(t, ok)
}

func TestRegistry_EnumerationIsJoinOrder(t *testing.T) {
	t.Parallel()
	reg := newRegistry()
	alice := NewMockClient("alice")
	bob := NewMockClient("bob")
	carol := NewMockClient("carol")

	reg.bind(alice, participant{id: "a", name: "Alice"})
	reg.bind(bob, participant{id: "b", name: "Bob"})
	reg.bind(carol, participant{id: "c", name: "Carol"})

	assert.Equal(t, []participant{
		{id: "a", name: "Alice"},
		{id: "b", name: "Bob"},
		{id: "c", name: "Carol"},
	}, reg.participants())
	assert.Equal(t, []Client{alice, bob, carol}, reg.clients())

	// removing from the middle keeps the rest in join order
	reg.unbind(bob)
	assert.Equal(t, []Client{alice, carol}, reg.clients())
}

func TestRegistry_RebindKeepsPosition(t *testing.T) {
	t.Parallel()
	reg := newRegistry()
	alice := NewMockClient("alice")
	bob := NewMockClient("bob")

	reg.bind(alice, participant{id: "a", name: "Alice"})
	reg.bind(bob, participant{id: "b", name: "Bob"})
	reg.bind(alice, participant{id: "a2", name: "Alice again"})

	assert.Equal(t, 2, reg.size())
	assert.Equal(t, []Client{alice, bob}, reg.clients())
	p, _ := reg.lookup(alice)
	assert.Equal(t, "a2", p.id)
}
