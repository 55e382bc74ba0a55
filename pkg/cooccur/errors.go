package cooccur

import "github.com/pkg/errors"

var (
	ErrInvalidWindow = errors.New("window size must be at least 1")
	ErrInvalidTopN   = errors.New("vocabulary size must not be negative")
	ErrUnknownMode   = errors.New("unknown windowing mode")
	//停用词文件不存在
	ErrStopwordsNotFound = errors.New("stopword source not found")
)

func checkWindow(window int) error {
	if window < 1 {
		return errors.Wrapf(ErrInvalidWindow, "got %d", window)
	}
	return nil
}

func checkTopN(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidTopN, "got %d", n)
	}
	return nil
}
