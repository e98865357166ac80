package partsvc

import (
	"context"
	"fmt"
	"io"

	"github.com/sir_venger/filepart/internal/models"
)

type (
	// Service объединяет операции разбиения файла на части и обратной сборки.
	Service interface {
		Split(ctx context.Context, path string, st models.Strategy) ([]string, error)
		Combine(ctx context.Context, path string) (string, error)
	}
)

// Deps — зависимости сервиса: куда писать статусные строки и нужна ли
// индикация прогресса по частям.
type Deps struct {
	Out      io.Writer
	Progress bool
}

type Parts struct {
	Deps
}

// New конструирует сервис с заданными зависимостями.
func New(deps Deps) *Parts {
	return &Parts{Deps: deps}
}

var _ Service = (*Parts)(nil)

// printf пишет одну статусную строку в выходной поток сервиса.
func (s *Parts) printf(format string, a ...any) {
	if s.Out == nil {
		return
	}
	fmt.Fprintf(s.Out, format+"\n", a...)
}
