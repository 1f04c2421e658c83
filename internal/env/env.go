package env

// Environment selects how the process presents itself: development runs log
// human-readable text, production runs log JSON for the CI log collector.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) Valid() bool {
	switch e {
	case Development, Production:
		return true
	default:
		return false
	}
}
