// Package format pretty-prints a parsed AST back to canonical source text.
//
// Назначение: каноничный принтер для fmt-команды и проверки parse→print→parse.
// Скобки восстанавливаются по приоритетам (парсер их не хранит), поэтому
// повторный разбор напечатанного текста даёт структурно идентичное дерево.
// Не делает: сохранения исходного форматирования, генерации кода или IO.
package format
