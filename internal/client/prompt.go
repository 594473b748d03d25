package client

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// passwordReader supplies a password the user left out of the command line.
type passwordReader func() (string, error)

// terminalPassword prompts on stderr and reads stdin without echo. It
// returns an empty password when stdin is not a terminal.
func terminalPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func (a *App) passwordOrPrompt(password string) (string, error) {
	if password != "" || a.readPassword == nil {
		return password, nil
	}
	return a.readPassword()
}
