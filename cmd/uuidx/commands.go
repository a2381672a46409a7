package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/RRWM1rr0rB/uuidx/core/safe/errorgroup"
	"github.com/RRWM1rr0rB/uuidx/core/uuid"
	"github.com/RRWM1rr0rB/uuidx/core/uuid/fastrand"
	"github.com/RRWM1rr0rB/uuidx/errors"
	"github.com/RRWM1rr0rB/uuidx/logging"
)

// Below this count the goroutine fan-out costs more than it saves.
const parallelThreshold = 1024

var errNoArgs = errors.New("at least one argument is required")

func (r *runner) generate(c *cli.Context) error {
	log := logging.WithAttrs(r.ctx, logging.StringAttr("command", "generate"))

	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	var opts []uuid.GenerateOption
	if c.Bool("fast") {
		reader, err := fastrand.New()
		if err != nil {
			return err
		}
		opts = append(opts, uuid.WithReader(reader))
	}

	limit := 1
	if count >= parallelThreshold {
		limit = runtime.GOMAXPROCS(0)
	}

	ids := make([]string, count)
	g, _ := errorgroup.WithContext(r.ctx, errorgroup.WithLimit(limit))
	for i := range ids {
		g.Go(func(ctx context.Context) error {
			id, err := r.tc.Generate(opts...)
			if err != nil {
				logging.L(ctx).Warn("generation failed", logging.IntAttr("index", i), logging.ErrAttr(err))
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(r.out, id)
	}
	log.Debug("generated", logging.IntAttr("count", count))
	return nil
}

func (r *runner) encode(c *cli.Context) error {
	return r.each(c, "encode", r.tc.FromUUID)
}

func (r *runner) decode(c *cli.Context) error {
	return r.each(c, "decode", r.tc.ToUUID)
}

func (r *runner) raw(c *cli.Context) error {
	return r.each(c, "raw", func(s string) (string, error) {
		b, err := r.tc.Decode(s)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b), nil
	})
}

// each applies convert to every argument. Failures are logged and collected
// so one bad input does not hide the results for the others.
func (r *runner) each(c *cli.Context, command string, convert func(string) (string, error)) error {
	log := logging.WithAttrs(r.ctx, logging.StringAttr("command", command))

	if c.NArg() == 0 {
		return errNoArgs
	}

	var problems error
	for _, arg := range c.Args().Slice() {
		out, err := convert(arg)
		if err != nil {
			log.Warn("conversion failed", logging.StringAttr("input", arg), logging.ErrAttr(err))
			problems = errors.Append(problems, err)
			continue
		}
		fmt.Fprintln(r.out, out)
	}
	return problems
}
