// Package partsvc реализует две взаимоисключающие операции утилиты:
//   - Split — один прямой проход по источнику с раскладкой в файлы
//     <имя>.part1..partN рядом с исходником;
//   - Combine — обнаружение частей по шаблону имени, числовая сортировка
//     индексов и последовательная склейка в файл с базовым именем.
//
// Обе операции не разделяют состояние и выполняются строго последовательно,
// синхронным вводом-выводом. Части после сборки не удаляются.
package partsvc
