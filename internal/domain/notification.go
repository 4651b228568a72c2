package domain

type Notification struct {
	To      ChatID
	Text    string
	Buttons []Action
}

// Menu asks the transport to re-render the actions offered in a chat.
type Menu struct {
	Chat    ChatID
	Actions []Action
}
