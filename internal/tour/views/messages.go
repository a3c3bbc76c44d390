package views

import "github.com/aussiebroadwan/heroes/internal/tour/messages"

// MessagesView is the panel under every screen.
type MessagesView struct {
	log *messages.Log
}

func NewMessagesView(log *messages.Log) *MessagesView {
	return &MessagesView{log: log}
}

// Messages returns the log, oldest first. An empty log hides the panel.
func (v *MessagesView) Messages() []string { return v.log.Messages() }

func (v *MessagesView) Visible() bool { return v.log.Len() > 0 }

func (v *MessagesView) Clear() { v.log.Clear() }
