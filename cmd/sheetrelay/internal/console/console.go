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

package console

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/bootstrap"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/golang/base"
	"github.com/rusq/sheetrelay/internal/bot"
	"github.com/rusq/sheetrelay/internal/channel"
	"github.com/rusq/sheetrelay/internal/pacer"
)

//go:embed assets/console.md
var consoleMD string

var CmdConsole = &base.Command{
	UsageLine:  base.CmdName + " console [flags]",
	Short:      "runs the chat commands in the terminal",
	Long:       consoleMD,
	Run:        runConsole,
	PrintFlags: true,
}

const prompt = "sheetrelay> "

var flags struct {
	history string
}

func init() {
	CmdConsole.Flag.StringVar(&flags.history, "history", historyFile(), "command history `file`, empty to disable")
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, base.CmdName, "history")
}

// Runner runs the chat command line.
type Runner interface {
	Run(ctx context.Context, ch pacer.Channel, line string) error
}

// LineReader reads the input lines.
type LineReader interface {
	Readline() (string, error)
}

func runConsole(ctx context.Context, cmd *base.Command, args []string) error {
	b, err := bootstrap.Bot(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	if flags.history != "" {
		if err := os.MkdirAll(filepath.Dir(flags.history), 0o755); err != nil {
			slog.WarnContext(ctx, "history disabled", "error", err)
			flags.history = ""
		}
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     flags.history,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return fmt.Errorf("failed to initialise the console: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintf(rl.Stdout(), "Type %shelp for commands, exit to quit.\n", bot.Prefix)
	return repl(ctx, rl, b, channel.NewWriter(rl.Stdout()))
}

// repl reads the command lines from rl and runs them, until EOF, "exit"
// or the context cancellation.
func repl(ctx context.Context, rl LineReader, r Runner, ch pacer.Channel) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := r.Run(ctx, ch, line); err != nil {
			// the failure is already printed as the reply.
			slog.DebugContext(ctx, "command failed", "line", line, "error", err)
		}
	}
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, c := range []string{"send", "set", "vars", "clear", "help"} {
		items = append(items, readline.PcItem(bot.Prefix+c))
	}
	items = append(items, readline.PcItem("exit"))
	return readline.NewPrefixCompleter(items...)
}
