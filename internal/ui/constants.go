package ui

const (
	MENU_HEADER = "Menu:"

	PROMPT = "Enter your choice: "

	GOODBYE = "Goodbye!"

	//Shown for unparseable input and for options that are not valid in the current state.
	INVALID_OPTION_TEXT = "Invalid option"

	NO_SELECTION_TEXT = "No word or phrase selected"
)
