package evaluator

// IO is the external collaborator contract the evaluator suspends
// through: output, input and runtime-error reporting. A host (the CLI,
// a future web front-end) supplies the concrete implementation.
type IO interface {
	Output(message string)
	Input() string
	RuntimeError(message string)
}
