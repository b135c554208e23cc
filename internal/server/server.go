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

// Package server implements the HTTP endpoints: the Slack slash command
// receiver and the liveness check.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rusq/slack"
	"golang.org/x/sync/errgroup"

	"github.com/rusq/sheetrelay/internal/pacer"
)

const (
	pathCommand     = "/slack/command"
	pathHealthcheck = "/healthcheck"

	healthBody = "Bot is running!"
	ackBody    = "⏳ Working on it..."

	shutdownTimeout = 10 * time.Second
	maxBodySize     = 64 << 10
)

// Runner runs the command line and replies to the channel.
type Runner interface {
	Run(ctx context.Context, ch pacer.Channel, line string) error
}

// ChannelFunc returns the channel that replies to the conversation.
type ChannelFunc func(channelID string) pacer.Channel

// Server is the HTTP server.
type Server struct {
	run    Runner
	newCh  ChannelFunc
	secret string
	lg     *slog.Logger

	mux *chi.Mux

	mu   sync.Mutex
	base context.Context
	wg   sync.WaitGroup
}

// Option is the server option.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.lg = lg
		}
	}
}

// New creates the server.  Slash commands are verified with the signing
// secret, and run with run, replies go to the channel created with newCh.
func New(run Runner, newCh ChannelFunc, signingSecret string, opts ...Option) *Server {
	s := &Server{
		run:    run,
		newCh:  newCh,
		secret: signingSecret,
		lg:     slog.Default(),
		base:   context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
	)
	r.Get("/", s.handleHealthcheck)
	r.Get(pathHealthcheck, s.handleHealthcheck)
	r.Post(pathCommand, s.handleCommand)
	s.mux = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts the
// server down and waits for the running commands to finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	eg, egctx := errgroup.WithContext(ctx)
	s.mu.Lock()
	s.base = egctx
	s.mu.Unlock()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return egctx
		},
	}
	eg.Go(func() error {
		s.lg.InfoContext(ctx, "listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.lg.DebugContext(ctx, "shutting down")
		err := srv.Shutdown(sctx)
		s.Wait()
		return err
	})
	return eg.Wait()
}

// Wait waits for all running commands to finish.
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) baseContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.base
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, healthBody)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sv, err := slack.NewSecretsVerifier(r.Header, s.secret)
	if err != nil {
		s.lg.WarnContext(ctx, "bad request signature headers", "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	r.Body = io.NopCloser(io.TeeReader(http.MaxBytesReader(w, r.Body, maxBodySize), &sv))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		s.lg.WarnContext(ctx, "unable to parse the slash command", "error", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := sv.Ensure(); err != nil {
		s.lg.WarnContext(ctx, "signature verification failed", "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	lg := s.lg.With("channel_id", cmd.ChannelID, "user_id", cmd.UserID, "command", cmd.Command)
	lg.InfoContext(ctx, "slash command", "text", cmd.Text)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		// the request context is done as soon as the handler returns.
		if err := s.run.Run(s.baseContext(), s.newCh(cmd.ChannelID), cmd.Text); err != nil {
			lg.Warn("command failed", "error", err)
		}
	}()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, ackBody)
}
