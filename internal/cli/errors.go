package cli

// DisableUsage disables the usage printing when an error occurs
type DisableUsage interface {
	DisableUsage() struct{}
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() struct{} { return struct{}{} }

func (err errDisableUsage) Unwrap() error { return err.error }

// ValidationError is returned when command inputs are invalid
type ValidationError struct {
	Message string
}

func (err ValidationError) Error() string { return err.Message }
