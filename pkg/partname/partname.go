// Package partname описывает соглашение об именовании частей файла — общий
// контракт между разбиением и сборкой (порядок частей кодируется в суффиксе).
package partname

import (
	"fmt"
	"regexp"
	"strconv"
)

// Формат имени части: <исходное имя>.part<N>, N начинается с 1, без нулей слева.
const suffixFormat = "%s.part%d"

// Format возвращает имя файла части с заданным индексом.
func Format(path string, index int) string {
	return fmt.Sprintf(suffixFormat, path, index)
}

// Pattern компилирует шаблон обнаружения частей для базового имени.
// Базовое имя экранируется и сопоставляется буквально, не как glob.
func Pattern(base string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(base) + `\.part(\d+)$`)
}

// Match — найденная часть: её числовой индекс и имя файла в каталоге.
type Match struct {
	Index int
	Name  string
}

// Discover отбирает из списка имён те, что соответствуют шаблону частей
// базового имени. Имена с непарсируемым индексом (например, переполнение)
// молча пропускаются.
func Discover(names []string, base string) []Match {
	re := Pattern(base)

	var out []Match
	for _, name := range names {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, Match{Index: idx, Name: name})
	}

	return out
}
