// Package fuzztests houses Go fuzz harnesses that push arbitrary lines and
// highlight ranges through diag.Build and every diagfmt format. Its goal is
// to guard against panics and against banners that break their invariants.
//
// Назначение: собрать диагностику из случайных байтов и проверить, что
// рендер детерминирован, а plain вариант равен цветному без escape-кодов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/diag, internal/diagfmt, internal/testkit.

package fuzztests
