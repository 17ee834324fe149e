package main

import (
	"net/http"
	"time"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm"
	"github.com/greenpythoncali/SeleniumBase/suites/browserdemo"
	"github.com/spf13/afero"
)

func main() {
	suite := storm.CreateSuite("browser")

	fs := afero.NewOsFs()
	client := &http.Client{Timeout: 30 * time.Second}

	suite.AddScenario(browserdemo.NewPageScenario(fs, client, suite.Session().Settings().DemoSleep))
	suite.AddHelper(browserdemo.NewSessionInfoHelper(fs))
	suite.AddListener(&browserdemo.SlowTestListener{Threshold: 10 * time.Second, Log: suite.Log})

	suite.Run()
}
