package terminal

type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	return "Error: " + e.Error(), nil
}
