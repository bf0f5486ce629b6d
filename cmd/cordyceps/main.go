// Command cordyceps streams a chat completion to stdout.
//
//	API_KEY=sk-... cordyceps "Tell me a joke"
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/linux-techtips/cordyceps/chat"
	"github.com/linux-techtips/cordyceps/client"
	"github.com/linux-techtips/cordyceps/config"
	"github.com/linux-techtips/cordyceps/logger"
	"github.com/linux-techtips/cordyceps/observability"
	"github.com/linux-techtips/cordyceps/version"
)

const serviceName = "cordyceps"

type appConfig struct {
	// APIKey is the bearer credential for the completions endpoint.
	APIKey string `mapstructure:"api_key" validate:"required"`
	// Model overrides the default model variant.
	Model string `mapstructure:"model"`
	// System is an optional system prompt prepended to the conversation.
	System string `mapstructure:"system"`

	Logging logger.Config              `mapstructure:"logging"`
	Tracing observability.TracerConfig `mapstructure:"tracing"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "cordyceps: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: cordyceps <prompt>")
	}
	prompt := strings.Join(args, " ")

	var cfg appConfig
	if err := config.Load(serviceName, &cfg); err != nil {
		return err
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, serviceName)
	log.Debug("starting", map[string]any{"version": version.Short()})

	opts := []client.Option{client.WithLogger(log)}
	if cfg.Tracing.Endpoint != "" {
		tp, err := observability.InitTracer(ctx, cfg.Tracing)
		if err != nil {
			return err
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()
		opts = append(opts, client.WithTracing())
	}

	builder := chat.NewBuilder()
	if cfg.Model != "" {
		model, err := chat.ParseModel(cfg.Model)
		if err != nil {
			return err
		}
		builder.Model(model)
	}
	if cfg.System != "" {
		builder.SystemMessage(cfg.System)
	}
	payload, err := builder.UserMessage(prompt).Build()
	if err != nil {
		return err
	}

	stream, err := chat.NewClient(cfg.APIKey, opts...).Send(ctx, payload)
	if err != nil {
		return err
	}
	defer func() { _ = stream.Close() }()

	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if chunk.Err != nil {
			return chunk.Err
		}

		frame, err := chat.Decode(chunk.Data)
		if err != nil {
			// Keep-alives, the terminator, and frames split across chunk
			// boundaries are expected noise; skip and keep pulling.
			continue
		}
		if text, ok := frame.Text(0); ok {
			fmt.Print(text)
		}
	}
	fmt.Println()
	return nil
}
