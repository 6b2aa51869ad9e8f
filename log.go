package fadaf

import (
	"log/slog"
	"os"
	"sync"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
)

var defaultLogger = sync.OnceValue(func() *slog.Logger {
	return slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         slog.LevelInfo,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	})).With(slog.String("pkg", "fadaf"))
})
