package pkg

type Action string

const (
	ActionNewGamePrompt Action = "New Game?"
	ActionNewGame       Action = "New Game"
	ActionExit          Action = "Exit"
)
