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

// Package cfg contains common configuration variables.
package cfg

import (
	"flag"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/sheetrelay"
	"github.com/rusq/sheetrelay/internal/alias"
)

var (
	TraceFile   string
	LogFile     string
	JsonHandler bool
	Verbose     bool

	ConfigFile string

	SlackToken    string
	SigningSecret string
	GoogleCreds   string

	RelayOptions = sheetrelay.DefOptions
	// Aliases is the alias store, seeded from the configuration file.
	Aliases = alias.NewStore()
)

type FlagMask uint16

const (
	DefaultFlags  FlagMask = 0
	OmitSlackFlag FlagMask = 1 << iota
	OmitSigningSecretFlag
	OmitGoogleFlag
	OmitConfigFlag
	OmitRelayFlags

	OmitAll = OmitSlackFlag |
		OmitSigningSecretFlag |
		OmitGoogleFlag |
		OmitConfigFlag |
		OmitRelayFlags
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `filename`")
	fs.StringVar(&LogFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JsonHandler, "log-json", osenv.Value("JSON_LOG", false), "output log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitSlackFlag == 0 {
		fs.StringVar(&SlackToken, "token", osenv.Secret("SLACK_BOT_TOKEN", ""), "Slack bot `token` (environment: SLACK_BOT_TOKEN)")
	}
	if mask&OmitSigningSecretFlag == 0 {
		fs.StringVar(&SigningSecret, "signing-secret", osenv.Secret("SLACK_SIGNING_SECRET", ""), "Slack app signing `secret` (environment: SLACK_SIGNING_SECRET)")
	}
	if mask&OmitGoogleFlag == 0 {
		fs.StringVar(&GoogleCreds, "google-creds", osenv.Secret("GOOGLE_CREDENTIALS_JSON", osenv.Value("GOOGLE_APPLICATION_CREDENTIALS", "")), "Google service account credentials `JSON or file`\n(environment: GOOGLE_CREDENTIALS_JSON or GOOGLE_APPLICATION_CREDENTIALS)")
	}
	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "config", osenv.Value("SHEETRELAY_CONFIG", ""), "TOML configuration `file` with relay options and aliases")
	}
	if mask&OmitRelayFlags == 0 {
		fs.IntVar(&RelayOptions.HeaderRow, "header-row", sheetrelay.DefOptions.HeaderRow, "zero based `index` of the header row")
		fs.StringVar(&RelayOptions.Separator, "sep", sheetrelay.DefOptions.Separator, "cell `separator`")
		fs.IntVar(&RelayOptions.Budget, "budget", sheetrelay.DefOptions.Budget, "maximum message `length` in characters")
		fs.DurationVar(&RelayOptions.Delay, "delay", sheetrelay.DefOptions.Delay, "minimum `delay` between messages")
		fs.BoolVar(&RelayOptions.HardSplit, "hard-split", sheetrelay.DefOptions.HardSplit, "split the lines that do not fit into one message")
		fs.BoolVar(&RelayOptions.Framing, "framing", sheetrelay.DefOptions.Framing, "send the header and summary messages around the data")
	}
}
