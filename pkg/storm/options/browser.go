package options

import "fmt"

type Browser string

const (
	BrowserFirefox          Browser = "firefox"
	BrowserChrome           Browser = "chrome"
	BrowserEdge             Browser = "edge"
	BrowserInternetExplorer Browser = "ie"
	BrowserSafari           Browser = "safari"
	BrowserOpera            Browser = "opera"
	BrowserPhantomJS        Browser = "phantomjs"
	BrowserHtmlUnit         Browser = "htmlunit"
	BrowserAndroid          Browser = "android"
	BrowserIPhone           Browser = "iphone"
	BrowserIPad             Browser = "ipad"

	DefaultBrowser = BrowserFirefox
)

// Browsers returns every supported browser, in the order used for help text.
func Browsers() []Browser {
	return []Browser{
		BrowserFirefox,
		BrowserChrome,
		BrowserEdge,
		BrowserInternetExplorer,
		BrowserSafari,
		BrowserOpera,
		BrowserPhantomJS,
		BrowserHtmlUnit,
		BrowserAndroid,
		BrowserIPhone,
		BrowserIPad,
	}
}

func (b Browser) String() string {
	return string(b)
}

// IsMobile returns true for browsers that are emulated on a mobile device.
func (b Browser) IsMobile() bool {
	switch b {
	case BrowserAndroid, BrowserIPhone, BrowserIPad:
		return true
	default:
		return false
	}
}

func (b *Browser) UnmarshalText(text []byte) error {
	for _, known := range Browsers() {
		if string(text) == string(known) {
			*b = known
			return nil
		}
	}

	return fmt.Errorf("invalid browser: %s", text)
}

type DatabaseEnv string

const (
	DatabaseEnvProd DatabaseEnv = "prod"
	DatabaseEnvQa   DatabaseEnv = "qa"
	DatabaseEnvTest DatabaseEnv = "test"

	DefaultDatabaseEnv = DatabaseEnvTest
)

func (e DatabaseEnv) String() string {
	return string(e)
}

func (e *DatabaseEnv) UnmarshalText(text []byte) error {
	*e = DatabaseEnv(text)
	switch *e {
	case DatabaseEnvProd, DatabaseEnvQa, DatabaseEnvTest:
		return nil
	default:
		return fmt.Errorf("invalid database environment: %s", text)
	}
}
