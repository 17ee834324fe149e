package browserdemo

import (
	"time"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm"
	"github.com/sirupsen/logrus"
)

// SlowTestListener warns about test cases that ran longer than a threshold.
type SlowTestListener struct {
	storm.BaseTestListener
	Threshold time.Duration
	Log       logrus.FieldLogger
}

func (l *SlowTestListener) AfterTest(info storm.TestInfo) {
	if info.RunTime() <= l.Threshold {
		return
	}

	l.Log.
		WithField("runTime", info.RunTime().Round(time.Millisecond)).
		Warnf("Test case '%s.%s' is slow", info.Registrant().Name(), info.Name())
}
