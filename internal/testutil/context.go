package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// SentMessage records one outbound send made through a FakeContext
type SentMessage struct {
	Text    string
	Options []interface{}
}

// FakeContext is a recording tele.Context for dialogue tests. It embeds
// the interface and overrides only the methods handlers use; anything
// else panics, which is a test defect.
type FakeContext struct {
	tele.Context

	User     *tele.User
	ChatRef  *tele.Chat
	MsgText  string
	Cb       *tele.Callback
	Sent     []SentMessage
	Deleted  bool
	Answered bool
}

// NewFakeContext creates a fake context for a plain text message
func NewFakeContext(userID, chatID int64, text string) *FakeContext {
	return &FakeContext{
		User:    &tele.User{ID: userID, FirstName: "Test", LastName: "User"},
		ChatRef: &tele.Chat{ID: chatID},
		MsgText: text,
	}
}

// NewFakeCallback creates a fake context for a button press
func NewFakeCallback(userID, chatID int64, unique string) *FakeContext {
	ctx := NewFakeContext(userID, chatID, "")
	ctx.Cb = &tele.Callback{Unique: unique}
	return ctx
}

func (f *FakeContext) Sender() *tele.User { return f.User }

func (f *FakeContext) Chat() *tele.Chat { return f.ChatRef }

func (f *FakeContext) Text() string { return f.MsgText }

func (f *FakeContext) Callback() *tele.Callback { return f.Cb }

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	text, _ := what.(string)
	f.Sent = append(f.Sent, SentMessage{Text: text, Options: opts})
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.Answered = true
	return nil
}

func (f *FakeContext) Delete() error {
	f.Deleted = true
	return nil
}

// SentTexts returns just the text of every recorded send
func (f *FakeContext) SentTexts() []string {
	out := make([]string, 0, len(f.Sent))
	for _, msg := range f.Sent {
		out = append(out, msg.Text)
	}
	return out
}
