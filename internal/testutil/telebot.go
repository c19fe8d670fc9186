package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a minimal tele.Context for handler tests.
// Methods not overridden here panic through the nil embedded interface.
type FakeContext struct {
	tele.Context

	User     *tele.User
	Msg      *tele.Message
	Cb       *tele.Callback
	Sent     []string
	Markups  []*tele.ReplyMarkup
	Answered int
	SendErr  error
	store    map[string]interface{}
}

// NewFakeMessage creates a context for a text message from userID
func NewFakeMessage(userID int64, text string) *FakeContext {
	user := &tele.User{ID: userID, Username: "tester"}
	return &FakeContext{
		User: user,
		Msg:  &tele.Message{ID: 1, Sender: user, Text: text},
	}
}

// NewFakeCallback creates a context for an inline button press from userID
func NewFakeCallback(userID int64, data string) *FakeContext {
	user := &tele.User{ID: userID, Username: "tester"}
	return &FakeContext{
		User: user,
		Cb:   &tele.Callback{ID: "cb", Sender: user, Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User {
	return c.User
}

func (c *FakeContext) Message() *tele.Message {
	if c.Msg == nil && c.Cb != nil {
		return c.Cb.Message
	}
	return c.Msg
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.Cb
}

func (c *FakeContext) Text() string {
	if c.Msg == nil {
		return ""
	}
	return c.Msg.Text
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	if text, ok := what.(string); ok {
		c.Sent = append(c.Sent, text)
	}
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			c.Markups = append(c.Markups, markup)
		}
	}
	return c.SendErr
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Answered++
	return nil
}

func (c *FakeContext) Set(key string, val interface{}) {
	if c.store == nil {
		c.store = make(map[string]interface{})
	}
	c.store[key] = val
}

func (c *FakeContext) Get(key string) interface{} {
	return c.store[key]
}

// LastSent returns the most recent text sent through the context
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}
