// Package bytesize разбирает человекочитаемые строки размеров ("10M", "512K")
// в количество байт. Суффиксы трактуются как степени 1024.
package bytesize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadSize возвращается при некорректной строке размера.
var ErrBadSize = errors.New("invalid size string")

// Множители суффиксов.
const (
	KiB = int64(1) << 10
	MiB = int64(1) << 20
	GiB = int64(1) << 30
)

// Parse конвертирует строку вида "10M", "512K", "2G" или "100" в байты.
// Суффикс нечувствителен к регистру; дробная часть допускается и после
// масштабирования усекается до целого ("1.5M" → 1572864).
func Parse(s string) (int64, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadSize)
	}

	mult := int64(1)
	switch t[len(t)-1] {
	case 'K':
		mult = KiB
		t = t[:len(t)-1]
	case 'M':
		mult = MiB
		t = t[:len(t)-1]
	case 'G':
		mult = GiB
		t = t[:len(t)-1]
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}

	return int64(f * float64(mult)), nil
}

// Human форматирует количество байт в компактный вид ("1.5 MB").
func Human(v int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	value := float64(v)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", v, units[unit])
	}
	return fmt.Sprintf("%.1f %s", value, units[unit])
}
