package dcs

type (
	HookHandler   interface{ DCSHook(*Hook) }
	PutHandler    interface{ DCSPut(uint8) }
	UnhookHandler interface{ DCSUnhook() }

	// Handler aggregates the methods needed to consume a whole device
	// control string.
	Handler interface {
		HookHandler
		PutHandler
		UnhookHandler
	}
)
