package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-mextrie/bittrie"
	"github.com/forestrie/go-mextrie/registry"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:      "mexdb",
		Usage:     "hand out smallest-free user ids from a command script",
		ArgsUsage: "[script file, default stdin]",
		Version:   versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "width",
				Usage:   "bit width of ids (1..64)",
				Value:   registry.DefaultWidth,
				EnvVars: []string{"MEXDB_WIDTH"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level: NOOP, DEBUG, INFO",
				Value:   "NOOP",
				EnvVars: []string{"MEXDB_LOG_LEVEL"},
			},
			&cli.StringSliceFlag{
				Name:  "seed",
				Usage: "id in use before the script runs (repeatable)",
			},
		},
		Action: runMexdb,
	}
	return app.Run(args)
}

func runMexdb(cctx *cli.Context) error {
	logger.New(cctx.String("log-level"))
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("mexdb")

	width := cctx.Uint("width")
	if width == 0 || width > bittrie.MaxWidth {
		return fmt.Errorf("%w: width=%d", bittrie.ErrInvalidWidth, width)
	}
	seed, err := parseNumbers(cctx.StringSlice("seed"))
	if err != nil {
		return fmt.Errorf("--seed: %w", err)
	}

	r, err := registry.New(
		registry.Config{Width: uint8(width)}, log,
		registry.WithName("mexdb"), registry.WithSeed(seed...))
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if path := cctx.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(cctx.App.Writer)
	defer out.Flush()
	return runScript(r, in, out)
}
