package commands

var registry = make(map[string]Command)

// Register регистрира команда
func Register(cmd Command) {
	registry[cmd.Name] = cmd
}

// Find намира команда по име
func Find(name string) *Command {
	if cmd, ok := registry[name]; ok {
		return &cmd
	}
	return nil
}

// Names връща имената на всички команди
func Names() []string {
	var names []string
	for name := range registry {
		names = append(names, name)
	}
	return names
}
