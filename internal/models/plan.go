package models

import "fmt"

// Strategy задаёт способ разбиения: фиксированное число частей либо
// максимальный размер одной части. Поле со значением > 0 считается заданным;
// при обоих заданных приоритет у Parts.
type Strategy struct {
	Parts   int
	MaxSize int64
}

// SplitPlan описывает, на сколько частей нужно разбить файл и какого они размера.
// Последняя часть может быть короче Size; при переоценке числа частей хвостовые
// части получаются пустыми — это допустимо.
type SplitPlan struct {
	Total int
	Size  int64
}

// PlanSplit вычисляет план разбиения файла размера filesize по стратегии.
func PlanSplit(filesize int64, st Strategy) (SplitPlan, error) {
	if st.Parts < 0 {
		return SplitPlan{}, fmt.Errorf("parts count must be positive, got %d", st.Parts)
	}
	if st.MaxSize < 0 {
		return SplitPlan{}, fmt.Errorf("max part size must be positive, got %d", st.MaxSize)
	}

	switch {
	case st.Parts > 0:
		return SplitPlan{
			Total: st.Parts,
			Size:  ceilDiv(filesize, int64(st.Parts)),
		}, nil
	case st.MaxSize > 0:
		return SplitPlan{
			Total: int(ceilDiv(filesize, st.MaxSize)),
			Size:  st.MaxSize,
		}, nil
	default:
		return SplitPlan{}, ErrNoStrategy
	}
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
