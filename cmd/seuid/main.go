/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

// Command seuid generates sequential unique identifiers, reads their
// timestamps and converts them to and from compact encoded form.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fogfish/seuid"
	"github.com/fogfish/seuid/internal/config"
	"github.com/fogfish/seuid/internal/logger"
	"github.com/oklog/ulid/v2"
)

var version = "dev" // injected via ldflags at build time

const description = "seuid: sequential unique identifiers\n\n" +
	"Generate time-ordered 128-bit identifiers, read their timestamps,\n" +
	"encode them over a custom alphabet and back."

// App is shared state bound into Run methods.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Out      io.Writer
	Alphabet string
}

// Codec builds codec from --alphabet flag or SEUID_ALPHABET.
func (app *App) Codec() (*seuid.Codec, error) {
	symbols := app.Config.Alphabet
	if app.Alphabet != "" {
		symbols = app.Alphabet
	}

	return seuid.NewCodec(seuid.WithAlphabet(symbols))
}

type CLI struct {
	Alphabet string `help:"Encoder alphabet, 16 to 64 unique symbols (overrides SEUID_ALPHABET)." placeholder:"SYMBOLS"`

	Gen     GenCmd      `cmd:"" help:"Generate identifiers."`
	Time    TimeCmd     `cmd:"" help:"Print timestamp (ms since Unix epoch) of identifier."`
	Date    DateCmd     `cmd:"" help:"Print UTC date of identifier."`
	Encode  EncodeCmd   `cmd:"" help:"Encode identifier over the alphabet."`
	Decode  DecodeCmd   `cmd:"" help:"Decode identifier to canonical form."`
	Symbols AlphabetCmd `cmd:"" name:"alphabet" help:"Print base and encoded length of the alphabet."`
	ULID    ULIDCmd     `cmd:"" name:"ulid" help:"Convert identifier to ULID and back."`
	Version VersionCmd  `cmd:"" help:"Print version."`
}

// ─── gen ─────────────────────────────────────────────────────────────────────

type GenCmd struct {
	Seed   *int64 `help:"Timestamp override, ms in [0, 2^48-1]." placeholder:"MS"`
	Count  int    `short:"n" default:"1" help:"Number of identifiers."`
	Encode bool   `short:"e" help:"Print encoded form."`
}

func (c *GenCmd) Run(app *App) error {
	var seed []int64
	if c.Seed != nil {
		seed = append(seed, *c.Seed)
	}

	var codec *seuid.Codec
	if c.Encode {
		var err error
		if codec, err = app.Codec(); err != nil {
			return err
		}
	}

	gen := seuid.NewGenerator()
	for i := 0; i < c.Count; i++ {
		uid, err := gen.K(seed...)
		if err != nil {
			return err
		}

		if codec != nil {
			fmt.Fprintln(app.Out, codec.EncodeK(uid))
		} else {
			fmt.Fprintln(app.Out, uid)
		}
	}

	app.Log.Debug("generated", slog.Int("count", c.Count), slog.Bool("encoded", c.Encode))
	return nil
}

// ─── time / date ─────────────────────────────────────────────────────────────

type TimeCmd struct {
	ID             string `arg:"" help:"Identifier in canonical form."`
	SkipValidation bool   `help:"Trust input, print NaN if it is malformed."`
}

func (c *TimeCmd) Run(app *App) error {
	t, err := seuid.Timestamp(c.ID, c.SkipValidation)
	if err != nil {
		return err
	}

	if t == seuid.NaT {
		fmt.Fprintln(app.Out, "NaN")
		return nil
	}

	fmt.Fprintln(app.Out, t)
	return nil
}

type DateCmd struct {
	ID             string `arg:"" help:"Identifier in canonical form."`
	SkipValidation bool   `help:"Trust input, print Invalid Date if it is malformed."`
}

func (c *DateCmd) Run(app *App) error {
	d, err := seuid.Date(c.ID, c.SkipValidation)
	if err != nil {
		return err
	}

	if d.IsZero() {
		fmt.Fprintln(app.Out, "Invalid Date")
		return nil
	}

	fmt.Fprintln(app.Out, d.Format("2006-01-02T15:04:05.000Z07:00"))
	return nil
}

// ─── encode / decode ─────────────────────────────────────────────────────────

type EncodeCmd struct {
	ID             string `arg:"" help:"Identifier in canonical form."`
	SkipValidation bool   `help:"Trust input structure, decode hex digits only."`
}

func (c *EncodeCmd) Run(app *App) error {
	codec, err := app.Codec()
	if err != nil {
		return err
	}

	encoded, err := codec.Encode(c.ID, c.SkipValidation)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, encoded)
	return nil
}

type DecodeCmd struct {
	Encoded string `arg:"" help:"Encoded identifier."`
	Strict  bool   `help:"Fail on symbols outside of the alphabet instead of printing no value."`
}

func (c *DecodeCmd) Run(app *App) error {
	codec, err := app.Codec()
	if err != nil {
		return err
	}

	id, err := codec.Decode(c.Encoded, c.Strict)
	if err != nil {
		return err
	}

	if id == "" {
		app.Log.Warn("no value", slog.String("encoded", c.Encoded))
	}

	fmt.Fprintln(app.Out, id)
	return nil
}

// ─── alphabet ────────────────────────────────────────────────────────────────

type AlphabetCmd struct{}

func (c *AlphabetCmd) Run(app *App) error {
	codec, err := app.Codec()
	if err != nil {
		return err
	}

	abc := codec.Alphabet()
	fmt.Fprintf(app.Out, "%s\tbase=%d\tlength=%d\n", abc, abc.Len(), abc.EncodedLen())
	return nil
}

// ─── ulid ────────────────────────────────────────────────────────────────────

type ULIDCmd struct {
	ID      string `arg:"" help:"Identifier in canonical form, or ULID with --reverse."`
	Reverse bool   `short:"r" help:"Convert ULID to canonical form."`
}

func (c *ULIDCmd) Run(app *App) error {
	if c.Reverse {
		id, err := ulid.ParseStrict(c.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", seuid.ErrInvalidFormat, err)
		}

		fmt.Fprintln(app.Out, seuid.FromULID(id))
		return nil
	}

	uid, err := seuid.Parse(c.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, seuid.ULID(uid))
	return nil
}

// ─── version ─────────────────────────────────────────────────────────────────

type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	fmt.Fprintf(app.Out, "seuid %s\n", version)
	return nil
}

// ─── main ────────────────────────────────────────────────────────────────────

func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("seuid"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
}

// run parses args and executes the selected command
func run(args []string, cfg *config.Config, log *slog.Logger, stdout, stderr io.Writer, exit func(int)) error {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr, exit)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	app := &App{
		Config:   cfg,
		Log:      log,
		Out:      stdout,
		Alphabet: cli.Alphabet,
	}

	return ctx.Run(app)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seuid: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := run(os.Args[1:], cfg, log, os.Stdout, os.Stderr, os.Exit); err != nil {
		log.Error("command failed", slog.Any("err", err))
		os.Exit(1)
	}
}
