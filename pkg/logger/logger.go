package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init cấu hình global zerolog logger theo môi trường
// development: console writer dễ đọc, còn lại: JSON một dòng / event
func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if env == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

func Debug(msg string) {
	log.Debug().Msg(msg)
}

func Warn(msg string, err error) {
	log.Warn().Err(err).Msg(msg)
}

func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
