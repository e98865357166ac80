// Package progress рисует ASCII-индикатор выполнения для потоков байт.
// Индикатор пишет в тот же поток, что и статусные строки утилиты, и
// перерисовывает строку через '\r' с троттлингом.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sir_venger/filepart/pkg/bytesize"
)

const (
	barWidth     = 32
	renderPeriod = 120 * time.Millisecond
)

// Bar — индикатор одного переноса данных известного (или неизвестного) объёма.
// Нулевой *Bar безопасен: все методы превращаются в no-op, что позволяет
// отключать индикацию одной проверкой при создании.
type Bar struct {
	out           io.Writer
	prefix        string
	total         int64
	current       int64
	lastRender    time.Time
	lastLineWidth int
	finished      bool
	mu            sync.Mutex
}

// New создаёт индикатор с заданным префиксом и ожидаемым объёмом в байтах.
// total <= 0 означает неизвестный объём: рисуется только счётчик байт.
func New(out io.Writer, prefix string, total int64) *Bar {
	if out == nil {
		return nil
	}
	return &Bar{
		out:    out,
		prefix: prefix,
		total:  total,
	}
}

// Add учитывает n переданных байт и при необходимости перерисовывает строку.
func (b *Bar) Add(n int64) {
	if b == nil || n <= 0 {
		return
	}
	b.mu.Lock()
	if b.finished {
		b.mu.Unlock()
		return
	}
	b.current += n
	b.mu.Unlock()
	b.render(false, "")
}

func (b *Bar) render(force bool, suffix string) {
	if b == nil {
		return
	}
	b.mu.Lock()
	if b.finished && !force {
		b.mu.Unlock()
		return
	}
	now := time.Now()
	if !force && now.Sub(b.lastRender) < renderPeriod {
		b.mu.Unlock()
		return
	}

	line := b.lineLocked()
	prevWidth := b.lastLineWidth
	b.lastLineWidth = len(line) + len(suffix)
	b.lastRender = now
	b.mu.Unlock()

	padding := ""
	if prevWidth > len(line)+len(suffix) {
		padding = strings.Repeat(" ", prevWidth-len(line)-len(suffix))
	}
	fmt.Fprintf(b.out, "\r%s%s%s", line, suffix, padding)
}

func (b *Bar) lineLocked() string {
	var builder strings.Builder
	builder.Grow(len(b.prefix) + 64)
	builder.WriteString(b.prefix)
	builder.WriteByte(' ')

	if b.total > 0 {
		ratio := float64(b.current) / float64(b.total)
		if ratio > 1 {
			ratio = 1
		}
		filled := int(ratio*float64(barWidth) + 0.5)
		if filled > barWidth {
			filled = barWidth
		}
		builder.WriteByte('[')
		builder.WriteString(strings.Repeat("=", filled))
		builder.WriteString(strings.Repeat(" ", barWidth-filled))
		builder.WriteString("] ")
		builder.WriteString(fmt.Sprintf("%3d%% ", int(ratio*100+0.5)))
		builder.WriteString(bytesize.Human(b.current))
		builder.WriteByte('/')
		builder.WriteString(bytesize.Human(b.total))
	} else {
		builder.WriteString(bytesize.Human(b.current))
		builder.WriteString(" transferred")
	}

	return builder.String()
}

// Finish завершает индикатор с маркером успеха и переводом строки.
func (b *Bar) Finish() {
	b.complete(true, nil)
}

// Fail завершает индикатор маркером ошибки.
func (b *Bar) Fail(err error) {
	b.complete(false, err)
}

func (b *Bar) complete(success bool, err error) {
	if b == nil {
		return
	}

	b.mu.Lock()
	if b.finished {
		b.mu.Unlock()
		return
	}
	b.finished = true
	line := b.lineLocked()
	prevWidth := b.lastLineWidth
	b.lastLineWidth = len(line)
	b.mu.Unlock()

	suffix := " ✓"
	if !success {
		if err != nil {
			suffix = fmt.Sprintf(" ✗ %v", err)
		} else {
			suffix = " ✗"
		}
	}

	padding := ""
	if prevWidth > len(line)+len(suffix) {
		padding = strings.Repeat(" ", prevWidth-len(line)-len(suffix))
	}

	fmt.Fprintf(b.out, "\r%s%s%s\n", line, suffix, padding)
}

// Writer оборачивает индикатор в io.Writer для io.TeeReader/io.MultiWriter.
func Writer(b *Bar) io.Writer {
	return countingWriter{bar: b}
}

type countingWriter struct {
	bar *Bar
}

func (w countingWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		w.bar.Add(int64(len(p)))
	}
	return len(p), nil
}
