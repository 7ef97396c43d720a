package main

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/userconfig/pkg/environment"
	"github.com/dmitrymomot/userconfig/pkg/logger"
	"github.com/dmitrymomot/userconfig/pkg/runid"
	"github.com/dmitrymomot/userconfig/pkg/userconfig"
	"github.com/dmitrymomot/userconfig/pkg/validator"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Service      string `env:"SERVICE_NAME" envDefault:"userconfig" validate:"required"`
	LogLevel     string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	LogFormat    string `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
	Policy       string `env:"USERCONFIG_POLICY" envDefault:"strict" validate:"oneof=strict compat"`
	InputFormat  string `env:"USERCONFIG_INPUT_FORMAT" envDefault:"json" validate:"oneof=json yaml"`
	MaxInputSize int    `env:"USERCONFIG_MAX_INPUT_SIZE" envDefault:"1048576" validate:"min=1"`
}

var structValidator = newStructValidator()

// newStructValidator reports fields by their environment variable name.
func newStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		return name
	})
	return v
}

func (c appConfig) validate() error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs validator.ValidationErrors
	for _, fe := range fieldErrs {
		errs.Add(configError(fe))
	}
	return errs
}

func configError(fe playground.FieldError) validator.ValidationError {
	ve := validator.ValidationError{Field: fe.Field()}
	switch fe.Tag() {
	case "required":
		ve.Code = validator.CodeRequired
		ve.Message = "is required"
	case "oneof":
		ve.Code = validator.CodeOneOf
		ve.Message = "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		ve.Code = validator.CodeFormat
		ve.Message = "must be at least " + fe.Param()
	default:
		ve.Code = validator.CodeFormat
		ve.Message = "failed " + fe.Tag() + " check"
	}
	return ve
}

func (c appConfig) options() []userconfig.Option {
	return []userconfig.Option{
		userconfig.WithPolicy(userconfig.Policy(c.Policy)),
		userconfig.WithMaxInputSize(c.MaxInputSize),
	}
}

func (c appConfig) logger(w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(c.Env), c.Service),
		logger.WithOutput(w),
		logger.WithContextExtractors(runid.LoggerExtractor()),
	}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(c.LogLevel)))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return logger.New(opts...)
}
