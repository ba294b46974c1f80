package env

// SessionsEnvironment drives the expired-session pruning job.
type SessionsEnvironment struct {
	PruneCron string `validate:"required,cron"`
}
