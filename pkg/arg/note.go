package arg

import "fmt"

func HandleNote(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf(
			"error: No note given. Try again",
		)
	}
	return args[0], nil
}
