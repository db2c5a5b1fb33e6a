package catalog

import (
	"github.com/neuronlabs/trackable/errdef"
	"github.com/neuronlabs/trackable/errors/class"
)

var (
	// MissingEnvVariable is raised when the required environment variable is not set or is blank.
	MissingEnvVariable = errdef.MustNew("Environment variable [{0}] is not defined",
		errdef.Named("MissingEnvVariable"), errdef.InNamespace(ErrorsUtil), errdef.WithClass(class.ConfigEnvMissing))

	// AuthorizationCodeNotInitialized is raised when the OIDC authorization code is used before it
	// was obtained from the provider.
	AuthorizationCodeNotInitialized = errdef.MustNew("Authorization code is not initialized",
		errdef.Named("AuthorizationCodeNotInitialized"), errdef.InNamespace(ErrorsAuthnOidc),
		errdef.WithClass(class.DomainRaisedAuthentication))
)
