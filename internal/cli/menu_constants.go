package cli

const (
	// AppVersion is the current version of the application.
	AppVersion = "v1.0.0"
)

const (
	// Menu options
	OptionDeriveKey = iota + 1
	OptionSign
	OptionVerify
	OptionSharedSecret
	OptionBenchmark
	OptionExit
)

// MenuOption represents a menu option with its description.
type MenuOption struct {
	ID          int
	Name        string
	Description string
}

// GetMenuOptions returns all available menu options.
func GetMenuOptions() []MenuOption {
	return []MenuOption{
		{ID: OptionDeriveKey, Name: "Derive Key Pair", Description: "Derive a public key from a symmetric seed"},
		{ID: OptionSign, Name: "Sign", Description: "Sign a message under the stored seed's key pair"},
		{ID: OptionVerify, Name: "Verify", Description: "Verify a signature against a public key and message"},
		{ID: OptionSharedSecret, Name: "Shared Secret", Description: "Derive a Diffie-Hellman shared secret with a peer"},
		{ID: OptionBenchmark, Name: "Benchmark", Description: "Time derive/sign/verify/shared-secret against a BLAKE3 reference"},
		{ID: OptionExit, Name: "Exit", Description: "Exit the program"},
	}
}
