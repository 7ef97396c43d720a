package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/userconfig/pkg/userconfig"
)

var demoUsers = []string{
	`{"id":"u1","email":"a@b.com","role":"intern"}`,
	`{"id":"u2","email":"a@b.com","role":"boss"}`,
	`{"id":123,"email":"ab.com","role":"intern"}`,
}

const demoInvalidArray = `[{"id":"u1","email":"a@b.com","role":"intern"},
    {"id":"u2","email":"a@b.com","role":"boss"},
    {"id":123,"email":"a@b.com","role":"intern"}]`

const demoValidArray = `
[{"id":"u1","email":"a@b.com","role":"intern"},
{"id":"u2","email":"a@b.com","role":"admin"},
{"id":"u3","email":"a@b.com","role":"mentor"}]`

type demoCase struct {
	label string
	eval  func() any
}

func demoCases(opts []userconfig.Option) []demoCase {
	cases := make([]demoCase, 0, len(demoUsers)+2)
	for i, input := range demoUsers {
		input := input
		cases = append(cases, demoCase{
			label: fmt.Sprintf("Inputs %d", i),
			eval:  func() any { return userconfig.ParseUserConfig(input, opts...) },
		})
	}
	return append(cases,
		demoCase{
			label: "Invalid JSON array response",
			eval:  func() any { return userconfig.ParseUsersConfig(demoInvalidArray, opts...) },
		},
		demoCase{
			label: "Valid JSON array response",
			eval:  func() any { return userconfig.ParseUsersConfig(demoValidArray, opts...) },
		},
	)
}

func runDemo(ctx context.Context, w io.Writer, opts []userconfig.Option) error {
	for _, c := range demoCases(opts) {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := json.Marshal(c.eval())
		if err != nil {
			return fmt.Errorf("%s: %w", c.label, err)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", c.label, b); err != nil {
			return err
		}
	}
	return nil
}
