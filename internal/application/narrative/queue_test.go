package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/journey/internal/domain/entity"
)

var testTexts = []string{
	"Do you remember my first message to you?",
	"I'm a happy man when I talk to you",
	"You liking this game still haha",
}

func createTestQueue() *Queue {
	return NewQueue(testTexts, 3500*time.Millisecond, 30)
}

func TestQueue_RevealByIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"first", 0, true},
		{"last", 2, true},
		{"past end", 3, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := createTestQueue()

			assert.Equal(t, tt.ok, q.Reveal(tt.index, entity.Vec(400, 210)))

			if !tt.ok {
				assert.Equal(t, 0, q.Len())
				return
			}
			msgs := q.Messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, testTexts[tt.index], msgs[0].Text)
			assert.Equal(t, tt.index, msgs[0].Index)
			assert.True(t, msgs[0].ScreenSpace)
		})
	}
}

func TestQueue_OneMessagePerReveal(t *testing.T) {
	q := createTestQueue()

	for i := range testTexts {
		q.Reveal(i, entity.Vec(400, 210))
	}

	msgs := q.Messages()
	require.Len(t, msgs, 3)
	for i, m := range msgs {
		assert.Equal(t, testTexts[i], m.Text)
	}
}

func TestQueue_UpdateAgesAndExpires(t *testing.T) {
	q := createTestQueue()
	q.Reveal(0, entity.Vec(400, 210))

	q.Update(time.Second)
	q.Reveal(1, entity.Vec(400, 210))

	msgs := q.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, time.Second, msgs[0].Age)
	assert.Equal(t, time.Duration(0), msgs[1].Age)

	q.Update(2500 * time.Millisecond)
	msgs = q.Messages()
	require.Len(t, msgs, 1, "first message expired at 3.5s")
	assert.Equal(t, 1, msgs[0].Index)

	q.Update(time.Second)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_UpdateIgnoresNonPositive(t *testing.T) {
	q := createTestQueue()
	q.Reveal(0, entity.Vec(0, 0))

	q.Update(0)
	q.Update(-time.Second)

	assert.Equal(t, time.Duration(0), q.Messages()[0].Age)
}

func TestQueue_PushIcon(t *testing.T) {
	q := createTestQueue()

	q.Push(Message{Kind: KindIcon, Text: "heart", Index: 7, Origin: entity.Vec(1580, 460), Lifetime: time.Second})

	msgs := q.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, -1, msgs[0].Index)
	assert.False(t, msgs[0].ScreenSpace)
}

func TestQueue_Clear(t *testing.T) {
	q := createTestQueue()
	q.Reveal(0, entity.Vec(0, 0))
	q.Reveal(1, entity.Vec(0, 0))

	q.Clear()

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 3, q.Count())
}

func TestQueue_MessagesIsSnapshot(t *testing.T) {
	q := createTestQueue()
	q.Reveal(0, entity.Vec(0, 0))

	msgs := q.Messages()
	msgs[0].Text = "changed"

	assert.Equal(t, testTexts[0], q.Messages()[0].Text)
}
