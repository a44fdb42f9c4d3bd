// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/beevik/m6502/cpu"
	"github.com/beevik/m6502/host"
	"github.com/beevik/term"
)

var (
	variant string
	load    string
	org     string
	reset   bool
)

func init() {
	flag.StringVar(&variant, "variant", "6502", "CPU variant (6502 or 2a03)")
	flag.StringVar(&load, "load", "", "binary file to load into memory")
	flag.StringVar(&org, "org", "$0000", "address at which to load the binary file")
	flag.BoolVar(&reset, "reset", false, "reset the CPU before running commands")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: m6502 [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	v, err := cpu.ParseVariant(variant)
	if err != nil {
		exitOnError(err)
	}

	h := host.New(v)

	// Load a binary image if requested.
	if load != "" {
		addr, err := parseAddr(org)
		if err != nil {
			exitOnError(err)
		}
		if _, err := h.LoadFile(load, addr); err != nil {
			exitOnError(err)
		}
	}

	if reset {
		h.Reset()
	}

	// Run commands contained in command-line files.
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		err = h.RunCommands(file, os.Stdout, false)
		file.Close()
		switch {
		case errors.Is(err, host.ErrQuit):
			return
		case err != nil:
			exitOnError(err)
		}
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run commands interactively when attached to a terminal.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	err = h.RunCommands(os.Stdin, os.Stdout, interactive)
	if err != nil && !errors.Is(err, host.ErrQuit) {
		exitOnError(err)
	}
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func parseAddr(s string) (uint16, error) {
	base := 10
	switch {
	case len(s) > 1 && s[0] == '$':
		s, base = s[1:], 16
	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s'", s)
	}
	return uint16(v), nil
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
