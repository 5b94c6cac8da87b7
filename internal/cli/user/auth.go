package user

// KeySource is where a resolved API key came from
type KeySource string

// set of API key sources
const (
	KeySourceFlag   KeySource = "--api-key flag"
	KeySourceEnv    KeySource = "PYLON_API_KEY environment variable"
	KeySourceStored KeySource = "stored credentials"
)

// AuthError is returned when no API key is available
type AuthError struct{}

func (err AuthError) Error() string {
	return "No API key provided.\nSet PYLON_API_KEY environment variable or pass --api-key <key>"
}

// ResolveAPIKey resolves the API key to use
// The flag takes precedence over the environment, which takes precedence
// over the key of the default stored workspace
func ResolveAPIKey(flagKey, envKey string, creds Credentials) (string, KeySource, error) {
	if flagKey != "" {
		return flagKey, KeySourceFlag, nil
	}
	if envKey != "" {
		return envKey, KeySourceEnv, nil
	}
	if key := creds.DefaultAPIKey(); key != "" {
		return key, KeySourceStored, nil
	}
	return "", "", AuthError{}
}
