package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/lyricboard/internal/client/vbml"
	"github.com/garrettladley/lyricboard/internal/client/vestaboard"
	appenv "github.com/garrettladley/lyricboard/internal/env"
	"github.com/garrettladley/lyricboard/internal/validator"
	"github.com/garrettladley/lyricboard/internal/xerrors"
)

// The envDefault tags below must match these; config_test checks it.
const (
	DefaultVBMLURL    = vbml.DefaultURL
	DefaultDisplayURL = vestaboard.DefaultURL

	EnvKeyAPIKey = "VESTABOARD_API_KEY"
)

type Config struct {
	Env         appenv.Environment `env:"ENV" envDefault:"production"`
	APIKey      Secret             `env:"VESTABOARD_API_KEY"`
	VBMLURL     string             `env:"VBML_URL" envDefault:"https://vbml.vestaboard.com/compose"`
	DisplayURL  string             `env:"VESTABOARD_URL" envDefault:"https://rw.vestaboard.com/"`
	HTTPTimeout time.Duration      `env:"HTTP_TIMEOUT" envDefault:"10s"`
	Schedule    string             `env:"SCHEDULE" envDefault:"0 9 * * *"`
	ScheduleTZ  string             `env:"SCHEDULE_TZ"`
	Sheet       Sheet
}

// Sheet points at an optional Google Sheet of lyrics. It is only used when
// both the sheet ID and the service account file are set.
type Sheet struct {
	ID              string `env:"LYRICS_SHEET_ID"`
	Range           string `env:"LYRICS_SHEET_RANGE" envDefault:"A:A"`
	CredentialsFile string `env:"GOOGLE_SERVICE_ACCOUNT_FILE"`
}

func (s Sheet) Enabled() bool {
	return s.ID != "" && s.CredentialsFile != ""
}

func Read() (Config, error) {
	return parse(env.Options{})
}

// ReadFrom parses cfg from the given variables instead of the process
// environment.
func ReadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, xerrors.Configuration(xerrors.WithOp("config"), xerrors.WithCause(err))
	}
	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var _ validator.Validator = Config{}

func (c Config) Validate() map[string]string {
	errs := make(map[string]string)
	if !c.Env.Valid() {
		errs["ENV"] = fmt.Sprintf("must be %q or %q, got %q", appenv.Development, appenv.Production, c.Env)
	}
	if c.HTTPTimeout <= 0 {
		errs["HTTP_TIMEOUT"] = fmt.Sprintf("must be positive, got %s", c.HTTPTimeout)
	}
	if _, err := c.ScheduleLocation(); err != nil {
		errs["SCHEDULE_TZ"] = fmt.Sprintf("unknown time zone %q", c.ScheduleTZ)
	}
	for key, raw := range map[string]string{"VBML_URL": c.VBMLURL, "VESTABOARD_URL": c.DisplayURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs[key] = fmt.Sprintf("must be an absolute URL, got %q", raw)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ScheduleLocation is the zone schedules without a CRON_TZ= prefix run in.
// It is the host's local zone when SCHEDULE_TZ is unset.
func (c Config) ScheduleLocation() (*time.Location, error) {
	if c.ScheduleTZ == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.ScheduleTZ)
}

// RequireAPIKey fails when the display credential is missing. Commands that
// write to the board call it before any network request.
func (c Config) RequireAPIKey() error {
	if c.APIKey.IsZero() {
		return xerrors.Configuration(
			xerrors.WithOp("config"),
			xerrors.WithMessage(EnvKeyAPIKey+" environment variable not set"),
		)
	}
	return nil
}
