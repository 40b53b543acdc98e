/*
 * logger.go, part of automl-autoplex.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package logger provides leveled, per-module logging for the pipeline.
//Sampling and supercell search emit advisory warnings rather than errors
//when a request can only be partially satisfied, so the logger is wired
//into those packages instead of growing their error returns.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

// Logger is the logging handle handed around the pipeline.
type Logger = *logging.Logger

const defaultFormat = "%{time:15:04:05.000} %{color}%{level:.4s}%{color:reset} %{module}: %{message}"

// NewLogger creates a logger for the given module writing to stderr.
// level is one of CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG; an
// unrecognized string falls back to INFO.
func NewLogger(level string, module string) Logger {
	log := logging.MustGetLogger(module)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	fm := logging.MustStringFormatter(defaultFormat)
	formatted := logging.NewBackendFormatter(backend, fm)
	leveled := logging.AddModuleLevel(formatted)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)
	return log
}
