package catalog

import (
	"github.com/neuronlabs/trackable/namespace"
)

// Namespaces of the catalog declarations.
var (
	LogMessages    = namespace.New("LogMessages")
	Authentication = LogMessages.Child("Authentication")
	Security       = Authentication.Child("Security")
	AuthnOidc      = Authentication.Child("AuthnOidc")
	AuthnK8s       = Authentication.Child("AuthnK8s")
	Util           = LogMessages.Child("Util")

	Errors          = namespace.New("Errors")
	ErrorsUtil      = Errors.Child("Util")
	ErrorsAuthnOidc = namespace.New("Errors", "Authentication", "AuthnOidc")
)
