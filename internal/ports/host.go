package ports

// HostBridge is the part of the plugin host the core talks to directly.
type HostBridge interface {
	Notify(message string) error
	SetSubInput(onChange func(text string), placeholder string) error
	SetSubInputValue(value string) error
}
