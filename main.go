package main

import (
	"context"
	"os"
	"os/signal"
	"statbot/internal/adapters/handler"
	"statbot/internal/adapters/nickserv"
	"statbot/internal/adapters/sender"
	"statbot/internal/adapters/status"
	"statbot/internal/core/domain/command"
	"statbot/internal/core/domain/commands"
	"statbot/internal/core/service"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	irc "github.com/thoj/go-ircevent"
)

func main() {
	log.Info().Msg("starting statbot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	conn := irc.IRC(viper.GetString("irc.nick"), viper.GetString("irc.user"))
	conn.UseTLS = viper.GetBool("irc.use_tls")
	conn.Password = viper.GetString("irc.password")

	s := sender.NewIRCSender(conn)

	statusClient := status.NewClient(viper.GetString("status.base_url"), viper.GetString("status.api_key"))

	probeTimeout, err := time.ParseDuration(viper.GetString("nickserv.probe_timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid probe timeout in config")
	}

	authManager := service.NewManager(s, nickserv.Decoder{}, viper.GetString("nickserv.service"), probeTimeout)

	registry := command.NewRegistry(commands.NewUnknownHandler(s))
	registry.Register(commands.NewPingHandler(s, "ping"))
	registry.Register(commands.NewHelpHandler(registry, s, "help"))
	registry.Register(commands.NewStatusHandler(statusClient, s, "status"))
	registry.Register(commands.NewDeleteHandler(statusClient, s, "delete"))
	registry.Register(commands.NewUpdateHandler(statusClient, s, "update"))
	registry.Register(commands.NewJoinHandler(s, "join"))
	registry.Register(commands.NewPartHandler(s, "part"))
	registry.Register(commands.NewChannelsHandler(s, "channels"))
	registry.Register(commands.NewLoveHandler(s, "love"))

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	dispatch := handler.NewDispatch(registry, authManager, s, handlerTimeout)

	conn.AddCallback("001", func(_ *irc.Event) {
		for _, channel := range viper.GetStringSlice("irc.channels") {
			s.Join(channel)
		}
	})

	conn.AddCallback("PRIVMSG", func(e *irc.Event) {
		go dispatch.Handle(ctx, e.Nick, e.Arguments[0], e.Message())
	})

	conn.AddCallback("NOTICE", func(e *irc.Event) {
		authManager.NotifyReply(e.Nick, e.Message())
	})

	conn.AddCallback("INVITE", func(e *irc.Event) {
		log.Info().Str("channel", e.Arguments[1]).Str("by", e.Nick).Msg("invited to channel")
		s.Join(e.Arguments[1])
	})

	conn.AddCallback("KICK", func(e *irc.Event) {
		if len(e.Arguments) > 1 && e.Arguments[1] == conn.GetNick() {
			log.Warn().Str("channel", e.Arguments[0]).Str("by", e.Nick).Msg("kicked from channel")
			s.Forget(e.Arguments[0])
		}
	})

	if err := conn.Connect(viper.GetString("irc.server")); err != nil {
		log.Panic().Err(err).Msg("failed connecting to IRC server")
	}

	go func() {
		<-ctx.Done()
		conn.Quit()
	}()

	log.Info().Msg("bot listening")
	conn.Loop()
}
