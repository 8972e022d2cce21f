// Package fuzztests houses Go fuzz harnesses for the spec pipeline
// (lexer -> specifier -> fill). They look for panics and for disagreement
// between the validating and compiling paths.
//
// Назначение: прогонять произвольные spec-строки и шаблоны через
// lexer, specifier.Check/Compile и driver.Fill.
//
// Не делает: запись файлов, выполнение CLI.
package fuzztests
