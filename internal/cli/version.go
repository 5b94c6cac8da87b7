package cli

var (
	// Name represents the CLI name; used for invoking the CLI commands
	Name = "pylon"

	// Version represents the CLI version
	Version = "0.1.0" // value may be injected at build-time
)

const (
	userAgentProduct = "pylon-cli"
)

// UserAgent returns the User-Agent the CLI identifies itself with
func UserAgent() string {
	return userAgentProduct + "/" + Version
}
