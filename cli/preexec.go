package cli

// PreExec is a function that may run before execution of a command's handler chain.
type PreExec func(s *Session) error

// Use registers handlers that run before the handler chain of every command, including root handlers.
// They don't run for help, version, or documentation output, since no command is executed in those cases.
//
// Passing a nil [Handler] will panic.
func (a *App) Use(handlers ...Handler) *App {
	for _, h := range handlers {
		if h == nil {
			panic("nil handler")
		}
	}
	a.preExec = append(a.preExec, handlers...)
	return a
}

// AddPreExec registers a [PreExec] that will be executed right before a command's handlers run.
// If an error is returned from a [PreExec], then the handlers will not be executed, and dispatch fails with the error.
//
// Passing a nil [PreExec] function to this method will panic.
func (a *App) AddPreExec(fn PreExec) *App {
	if fn == nil {
		panic("nil pre-exec function")
	}
	return a.Use(Check(fn))
}
