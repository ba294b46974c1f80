package portal

import (
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/inkwell/api/metal/env"
)

// Sentry bundles the HTTP instrumentation handler with its options so the
// kernel can wrap the server handler at boot.
type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}
