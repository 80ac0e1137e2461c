package report

type Config struct {
	TimeLayout     string `envconfig:"REPORT_TIME_LAYOUT" default:"2006-01-02T15:04:05Z07:00"`
	CurrencySymbol string `envconfig:"REPORT_CURRENCY_SYMBOL" default:"$"`
}
