package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/forestrie/go-mextrie/registry"
)

var (
	ErrUnknownCommand = errors.New("mexdb: unknown command")
	ErrBadArguments   = errors.New("mexdb: wrong number of arguments")
	ErrBadNumber      = errors.New("mexdb: invalid number")
)

// runScript executes one command per line against r, writing results to out.
// Blank lines and text after '#' are ignored. The first failing command stops
// the script.
func runScript(r *registry.Registry, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := runCommand(r, fields[0], fields[1:], out); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

func runCommand(r *registry.Registry, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "register":
		if err := checkArgs(cmd, args, 0); err != nil {
			return err
		}
		id, err := r.Register()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, id)
		return err

	case "encrypt":
		if err := checkArgs(cmd, args, 1); err != nil {
			return err
		}
		key, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		r.Encrypt(key)
		return nil

	case "add":
		if err := checkArgs(cmd, args, 1); err != nil {
			return err
		}
		id, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		return r.Seed(id)

	case "mex":
		if err := checkArgs(cmd, args, 0); err != nil {
			return err
		}
		mex, err := r.Mex()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, mex)
		return err

	case "has":
		if err := checkArgs(cmd, args, 1); err != nil {
			return err
		}
		id, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, r.Contains(id))
		return err

	case "dump":
		if err := checkArgs(cmd, args, 0); err != nil {
			return err
		}
		ids := r.IDs()
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.FormatUint(id, 10)
		}
		_, err := fmt.Fprintln(out, strings.Join(parts, " "))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

func checkArgs(cmd string, args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrBadArguments, cmd, want, len(args))
	}
	return nil
}

// parseNumber accepts Go integer literal syntax, including 0x, 0o, 0b and
// underscores.
func parseNumber(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return v, nil
}

func parseNumbers(ss []string) ([]uint64, error) {
	out := make([]uint64, 0, len(ss))
	for _, s := range ss {
		v, err := parseNumber(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
