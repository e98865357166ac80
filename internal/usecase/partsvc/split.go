package partsvc

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sir_venger/filepart/internal/models"
	"github.com/sir_venger/filepart/pkg/partname"
	"github.com/sir_venger/filepart/pkg/progress"
)

// Split читает источник одним прямым проходом и раскладывает его на части
// <path>.part1..partN рядом с исходным файлом. Уже существующие файлы частей
// перезаписываются без предупреждения. Возвращает имена созданных частей.
func (s *Parts) Split(ctx context.Context, path string, st models.Strategy) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", models.ErrSourceNotFound, path)
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q is not a regular file", models.ErrSourceNotFound, path)
	}

	plan, err := models.PlanSplit(info.Size(), st)
	if err != nil {
		return nil, err
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	s.printf("Splitting '%s' (%d bytes)", path, info.Size())

	created := make([]string, 0, plan.Total)
	remaining := info.Size()
	for idx := 1; idx <= plan.Total; idx++ {
		// Ошибки диска не откатываются: уже записанные части остаются.
		if err := ctx.Err(); err != nil {
			return created, err
		}

		name := partname.Format(path, idx)
		var bar *progress.Bar
		if s.Progress {
			bar = progress.New(s.Out,
				fmt.Sprintf("Writing part %d/%d", idx, plan.Total),
				min(plan.Size, remaining),
			)
		}

		n, err := writePart(name, src, plan.Size, bar)
		if err != nil {
			bar.Fail(err)
			return created, err
		}
		bar.Finish()

		created = append(created, name)
		remaining -= n
		s.printf("Created: %s (%d bytes)", name, n)
	}

	s.printf("Split complete ✓")
	return created, nil
}

// writePart копирует до max байт из src в новый файл части.
func writePart(name string, src io.Reader, max int64, bar *progress.Bar) (int64, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}

	limited := &io.LimitedReader{R: src, N: max}
	n, err := io.Copy(f, io.TeeReader(limited, progress.Writer(bar)))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
