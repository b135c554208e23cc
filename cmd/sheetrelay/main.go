// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command sheetrelay relays the spreadsheet cells into the chat channel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/trace"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/cfg"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/console"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/golang/base"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/golang/help"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/send"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/serve"
)

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	loadSecrets(secrets)

	base.Sheetrelay.Commands = []*base.Command{
		serve.CmdServe,
		send.CmdSend,
		console.CmdConsole,
		CmdVersion,
	}
}

func main() {
	flag.Usage = func() { _ = help.PrintUsage(os.Stderr, base.Sheetrelay) }
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		base.SetExitStatus(base.SHelpRequested)
		base.Exit()
	}

	if args[0] == "help" {
		if err := help.Help(os.Stdout, args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		base.Exit()
	}

	cmd := lookup(base.Sheetrelay, args[0])
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "%s %s: unknown command\nRun '%s help' for usage.\n", base.CmdName, args[0], base.CmdName)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
	if err := invoke(cmd, args[1:]); err != nil {
		if base.ExitStatus() == base.SNoError {
			base.SetExitStatus(base.SGenericError)
		}
		if errors.Is(err, context.Canceled) {
			slog.Info("operation cancelled")
		} else {
			slog.Error("command failed", "command", cmd.LongName(), "error", err, "status", base.ExitStatus())
		}
	}
	base.Exit()
}

// lookup returns the runnable subcommand of parent by name.
func lookup(parent *base.Command, name string) *base.Command {
	for _, cmd := range parent.Commands {
		if cmd.Name() == name && cmd.Runnable() {
			return cmd
		}
	}
	return nil
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// invoke parses the command flags, initialises the logging, tracing and
// configuration, and runs the command.
func invoke(cmd *base.Command, args []string) error {
	if !cmd.CustomFlags {
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		cmd.Flag.Usage = func() { cmd.Usage() }
		if err := cmd.Flag.Parse(args); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return err
		}
		args = cmd.Flag.Args()
	}

	if _, err := initLog(cfg.LogFile, cfg.JsonHandler, cfg.Verbose); err != nil {
		return err
	}
	stop := initTrace(cfg.TraceFile)
	defer stop()

	if cmd.FlagMask&cfg.OmitConfigFlag == 0 {
		if err := cfg.LoadConfig(&cmd.Flag, cfg.ConfigFile, cfg.Aliases); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx, task := trace.NewTask(ctx, "command")
	defer task.End()

	trace.Log(ctx, "command", fmt.Sprint("Running ", cmd.Name(), " command"))
	slog.DebugContext(ctx, "running command", "command", cmd.Name(), "args", args)
	return cmd.Run(ctx, cmd, args)
}
