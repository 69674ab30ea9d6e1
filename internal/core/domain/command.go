package domain

// Command is a single external tool invocation. Argv[0] is the executable
// name, resolved against PATH by the runner.
type Command struct {
	Argv []string
	// Dir is the working directory. Empty means the process working directory.
	Dir string
	// Env holds additional environment variables layered over the process
	// environment.
	Env map[string]string
}
