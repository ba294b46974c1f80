package env

type LogsEnvironment struct {
	Level      string `validate:"required"`
	Dir        string `validate:"required"`
	DateFormat string `validate:"required"`
}
