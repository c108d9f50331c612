package tuner

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/autotune/parameter"
)

// buildLogger constructs the *logrus.Logger a Tuner logs evaluations
// through, honoring WithLogger, WithSilent, and WithLogFile. The returned
// *os.File is non-nil only when a log file was opened, so the caller can
// close it when the run ends.
func buildLogger(oo options) (*logrus.Logger, *os.File, error) {
	logger := oo.logger
	if logger == nil {
		logger = logrus.New()
	}
	if oo.silent {
		logger.SetLevel(logrus.ErrorLevel)
	}

	var f *os.File
	if oo.logFile != "" {
		var err error
		f, err = os.OpenFile(oo.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		logger.SetOutput(io.MultiWriter(logger.Out, f))
	}

	return logger, f, nil
}

// logEvaluation emits one structured log line per evaluation: the
// configuration's name=value pairs, the search-space index, and either the
// cost or an invalid marker (line-oriented and
// human-readable; the exact byte layout is not a compatibility surface).
func logEvaluation(logger *logrus.Logger, cfg parameter.Configuration, idx int64, c float64, invalid bool) {
	fields := logrus.Fields{"index": idx}
	for name, v := range cfg {
		fields[name] = v.GoString()
	}
	if invalid {
		fields["invalid"] = true
		logger.WithFields(fields).Info("evaluation invalid")
		return
	}
	fields["cost"] = c
	logger.WithFields(fields).Info("evaluation")
}
