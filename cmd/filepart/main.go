package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/sir_venger/filepart/internal/config"
	"github.com/sir_venger/filepart/internal/models"
	"github.com/sir_venger/filepart/internal/usecase/partsvc"
	"github.com/sir_venger/filepart/pkg/bytesize"
)

var cli struct {
	File    string `arg:"" help:"File to split or base name to combine."`
	MaxSize string `help:"Max part size (e.g. 10M, 512K)." placeholder:"SIZE"`
	Parts   int    `help:"Number of parts to split into." placeholder:"N"`
	Combine bool   `help:"Combine parts back together."`
}

// main разбирает аргументы и выполняет ровно одну операцию: разбиение либо
// сборку. Любая ошибка печатается статусной строкой и завершает процесс кодом 1.
func main() {
	kong.Parse(&cli,
		kong.Name("filepart"),
		kong.Description("Split and combine files easily."),
	)

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := partsvc.New(partsvc.Deps{Out: os.Stdout, Progress: cfg.Progress})

	// --combine игнорирует --parts/--max-size.
	if cli.Combine {
		if _, err := svc.Combine(ctx, cli.File); err != nil {
			fail(err)
		}
		return
	}

	st, err := resolveStrategy(cfg)
	if err != nil {
		fail(err)
	}
	if _, err := svc.Split(ctx, cli.File, st); err != nil {
		fail(err)
	}
}

// resolveStrategy собирает стратегию разбиения: флаги CLI важнее дефолтов из
// конфигурации. Строка размера разбирается до любого файлового ввода-вывода.
func resolveStrategy(cfg *config.Config) (models.Strategy, error) {
	parts := cli.Parts
	maxSizeStr := cli.MaxSize
	if parts == 0 && maxSizeStr == "" {
		parts = cfg.DefaultParts
		maxSizeStr = cfg.DefaultMaxSize
	}

	st := models.Strategy{Parts: parts}
	if maxSizeStr != "" {
		sz, err := bytesize.Parse(maxSizeStr)
		if err != nil {
			return models.Strategy{}, err
		}
		if sz < 1 {
			return models.Strategy{}, fmt.Errorf("max part size must be at least 1 byte, got %q", maxSizeStr)
		}
		st.MaxSize = sz
	}

	return st, nil
}

// fail печатает диагностику в stdout — туда же, куда идут статусные строки, —
// и завершает процесс ненулевым кодом.
func fail(err error) {
	fmt.Fprintf(os.Stdout, "Error: %v\n", err)
	os.Exit(1)
}
