package partsvc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sir_venger/filepart/internal/models"
	"github.com/sir_venger/filepart/pkg/partname"
	"github.com/sir_venger/filepart/pkg/progress"
)

// Combine находит части <базовое имя>.partN в каталоге пути и склеивает их в
// выходной файл с базовым именем, строго по возрастанию числового индекса
// (part9 раньше part10). Части после сборки не удаляются.
func (s *Parts) Combine(ctx context.Context, path string) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", models.ErrDirUnreadable, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	matches := partname.Discover(names, base)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w for %q", models.ErrNoParts, path)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })

	// Выходной файл создаётся только после успешного обнаружения частей;
	// при ошибке посреди склейки он остаётся частично записанным.
	out := filepath.Join(dir, base)
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}

	total := int64(0)
	for i, m := range matches {
		if err := ctx.Err(); err != nil {
			_ = f.Close()
			return "", err
		}

		partPath := filepath.Join(dir, m.Name)
		n, err := s.appendPart(f, partPath, i+1, len(matches))
		if err != nil {
			_ = f.Close()
			return "", err
		}
		total += n
		s.printf("Added: %s (%d bytes)", partPath, n)
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	s.printf("Combined into '%s' (%d bytes) ✓", out, total)
	return out, nil
}

// appendPart дописывает содержимое одной части в выходной файл.
func (s *Parts) appendPart(dst io.Writer, partPath string, num, total int) (int64, error) {
	f, err := os.Open(partPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var bar *progress.Bar
	if s.Progress {
		size := int64(0)
		if info, err := f.Stat(); err == nil {
			size = info.Size()
		}
		bar = progress.New(s.Out, fmt.Sprintf("Reading part %d/%d", num, total), size)
	}

	n, err := io.Copy(dst, io.TeeReader(f, progress.Writer(bar)))
	if err != nil {
		bar.Fail(err)
		return n, err
	}
	bar.Finish()
	return n, nil
}
