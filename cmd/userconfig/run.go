package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/userconfig/pkg/config"
	"github.com/dmitrymomot/userconfig/pkg/logger"
	"github.com/dmitrymomot/userconfig/pkg/runid"
	"github.com/dmitrymomot/userconfig/pkg/userconfig"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

const usage = `usage: userconfig <command> [file|-]

commands:
  user   validate a single user object
  users  validate an array of users
  demo   run the built-in sample inputs
`

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg appConfig
	if err := config.Load(&cfg, config.WithOptionalEnvFiles(".env")); err != nil {
		fmt.Fprintf(stderr, "userconfig: load config: %v\n", err)
		return exitError
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "userconfig: invalid config: %v\n", err)
		return exitError
	}

	log := cfg.logger(stderr)
	ctx = runid.WithContext(ctx, runid.New())

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitError
	}

	switch cmd := args[0]; cmd {
	case "demo":
		if err := runDemo(ctx, stdout, cfg.options()); err != nil {
			log.ErrorContext(ctx, "demo failed", logger.Error(err))
			return exitError
		}
		return exitOK
	case "user", "users":
		source := "-"
		if len(args) > 1 {
			source = args[1]
		}
		return validateSource(ctx, log, cfg, cmd == "users", source, stdin, stdout)
	default:
		fmt.Fprintf(stderr, "userconfig: unknown command %q\n\n%s", cmd, usage)
		return exitError
	}
}

func validateSource(ctx context.Context, log *slog.Logger, cfg appConfig, batch bool, source string, stdin io.Reader, stdout io.Writer) int {
	format := inputFormat(source, cfg.InputFormat)
	log = log.With(logger.Source(source), logger.InputFormat(format), logger.Policy(cfg.Policy))

	text, err := readInput(source, stdin, cfg.MaxInputSize)
	if err != nil {
		log.ErrorContext(ctx, "failed to read input", logger.Error(err))
		return exitError
	}

	var (
		out   any
		ok    bool
		vErr  error
		count int
	)
	if batch {
		res := parseUsers(text, format, cfg.options())
		out, ok, vErr, count = res, res.OK(), res.Err(), len(res.Value())
	} else {
		res := parseUser(text, format, cfg.options())
		out, ok, vErr = res, res.OK(), res.Err()
		if ok {
			u := res.Value()
			log = log.With(logger.UserID(u.ID), logger.Role(u.Role.String()))
			count = 1
		}
	}

	if err := json.NewEncoder(stdout).Encode(out); err != nil {
		log.ErrorContext(ctx, "failed to write result", logger.Error(err))
		return exitError
	}

	if !ok {
		logRejection(ctx, log, vErr)
		return exitInvalid
	}

	msg := "user config accepted"
	if batch {
		msg = "users config accepted"
	}
	log.InfoContext(ctx, msg, logger.Count(count))
	return exitOK
}

func logRejection(ctx context.Context, log *slog.Logger, err error) {
	attrs := []any{logger.Error(err)}

	var uerr *userconfig.Error
	if errors.As(err, &uerr) {
		detail := uerr
		if elem := uerr.Element(); elem != nil {
			attrs = append(attrs, logger.Index(uerr.Index))
			detail = elem
		}
		attrs = append(attrs, logger.Fields(detail.Violations.Fields()))
		if detail.Err != nil {
			attrs = append(attrs, slog.String("cause", detail.Err.Error()))
		}
	}

	log.WarnContext(ctx, "user config rejected", attrs...)
}

func parseUser(text, format string, opts []userconfig.Option) userconfig.Result[userconfig.User] {
	if format == formatYAML {
		u, err := userconfig.ParseUserYAML(text, opts...)
		if err != nil {
			return userconfig.Fail[userconfig.User](err)
		}
		return userconfig.Ok(u)
	}
	return userconfig.ParseUserConfig(text, opts...)
}

func parseUsers(text, format string, opts []userconfig.Option) userconfig.Result[[]userconfig.User] {
	if format == formatYAML {
		users, err := userconfig.ParseUsersYAML(text, opts...)
		if err != nil {
			return userconfig.Fail[[]userconfig.User](err)
		}
		return userconfig.Ok(users)
	}
	return userconfig.ParseUsersConfig(text, opts...)
}

func inputFormat(source, fallback string) string {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".json":
		return formatJSON
	default:
		return fallback
	}
}

// readInput reads at most limit+1 bytes so oversized input is still
// reported by the parser instead of being silently truncated. A
// non-positive limit reads everything.
func readInput(source string, stdin io.Reader, limit int) (string, error) {
	r := stdin
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", source, err)
	}
	return string(b), nil
}
