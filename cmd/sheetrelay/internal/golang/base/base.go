// Package base defines shared basic pieces of the sheetrelay command.
//
// The command subsystem is based on golang's `go` command implementation, which
// is BSD-licensed:
//
//	Copyright 2017 The Go Authors. All rights reserved.
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/cfg"
)

const CmdName = "sheetrelay"

// A Command is an implementation of a sheetrelay command.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	UsageLine string

	// Short is the short description shown in the 'sheetrelay help' output.
	Short string

	// Long is the long message shown in the 'sheetrelay help <this-command>'
	// output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// FlagMask is the mask of the global flags that this command does not
	// need.
	FlagMask cfg.FlagMask

	// CustomFlags indicates that the command will do its own
	// flag parsing.
	CustomFlags bool

	// PrintFlags indicates that generic help handler should print the
	// flags in the flagset.  Set it to false, if a Long lists all the flags.
	PrintFlags bool

	// Commands lists the available commands and help topics.
	// The order here is the order in which they are printed by 'sheetrelay help'.
	Commands []*Command
}

var Sheetrelay = &Command{
	UsageLine: CmdName,
	Long:      `Sheetrelay relays a window of spreadsheet cells into a chat channel.`,
	// Commands initialised in main.
}

var (
	exitStatus = SNoError
	exitMu     sync.Mutex
)

// SetExitStatus sets the exit status, if it is greater than the current one.
func SetExitStatus(n StatusCode) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

// ExitStatus returns the current exit status.
func ExitStatus() StatusCode {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

var atExitFuncs []func()

func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(int(ExitStatus()))
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// LongName returns the command's long name: all the words in the usage line
// between "sheetrelay" and a flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if name == CmdName {
		return ""
	}
	return strings.TrimPrefix(name, CmdName+" ")
}

// Name returns the command's short name: the last word in the usage line
// before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Usage prints the usage and exits.
func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "Run '%s help %s' for details.\n", CmdName, c.LongName())
	SetExitStatus(SHelpRequested)
	Exit()
}
