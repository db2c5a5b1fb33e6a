package catalog

import (
	"github.com/neuronlabs/trackable/message"
	"github.com/neuronlabs/trackable/namespace"
	"github.com/neuronlabs/trackable/registry"
)

func logMessage(p namespace.Path, name string, code registry.Code, raw string) *message.Definition {
	return message.MustNew(code, raw, message.Named(name), message.InNamespace(p))
}

/**

Authentication

*/

// OriginValidated is logged when the request origin passes the authenticator checks.
var OriginValidated = logMessage(Authentication, "OriginValidated", "CONJ00003D",
	"Origin validated")

/**

Security

*/

var (
	// SecurityValidated is logged when the authenticator security checks pass.
	SecurityValidated = logMessage(Security, "SecurityValidated", "CONJ00001D",
		"Security validated")

	// UserNotAuthorized is logged when the user has no permission on the authenticator webservice.
	UserNotAuthorized = logMessage(Security, "UserNotAuthorized", "CONJ00002D",
		"User '{0}' is not authorized to authenticate with webservice '{1}'")
)

/**

AuthnOidc

*/

var (
	ExtractedUsernameFromIDToked = logMessage(AuthnOidc, "ExtractedUsernameFromIDToked", "CONJ00004D",
		"Extracted username '{0}' from ID Token field '{1-id-token-username-field}'")

	IDTokenDecodeSuccess = logMessage(AuthnOidc, "IDTokenDecodeSuccess", "CONJ00005D",
		"ID Token decode succeeded")

	IDTokenVerificationSuccess = logMessage(AuthnOidc, "IDTokenVerificationSuccess", "CONJ00006D",
		"ID Token verification succeeded")

	OIDCProviderURI = logMessage(AuthnOidc, "OIDCProviderUri", "CONJ00007D",
		"Working with OIDC Provider {0-provider-uri}")

	OIDCProviderDiscoverySuccess = logMessage(AuthnOidc, "OIDCProviderDiscoverySuccess", "CONJ00008D",
		"OIDC Provider discovery succeeded")

	FetchProviderCertsSuccess = logMessage(AuthnOidc, "FetchProviderCertsSuccess", "CONJ00009D",
		"Fetched OIDC Provider certificates successfully")

	OIDCProviderCertificateFetchedFromCache = logMessage(AuthnOidc, "OIDCProviderCertificateFetchedFromCache", "CONJ00017D",
		"OIDC Provider certificates fetched successfully from cache")

	IDTokenDecodeFailed = logMessage(AuthnOidc, "IDTokenDecodeFailed", "CONJ00018D",
		"Failed to decode the ID Token with the error '{0-exception}'")

	ValidateProviderCertificateIsUpdated = logMessage(AuthnOidc, "ValidateProviderCertificateIsUpdated", "CONJ00019D",
		"Validating OIDC Provider certificates are up to date")
)

/**

AuthnK8s

*/

var (
	PodChannelOpen = logMessage(AuthnK8s, "PodChannelOpen", "CONJ00010D",
		"Pod '{0-pod-name}' : channel open")

	PodChannelClosed = logMessage(AuthnK8s, "PodChannelClosed", "CONJ00011D",
		"Pod '{0-pod-name}' : channel closed")

	PodChannelData = logMessage(AuthnK8s, "PodChannelData", "CONJ00012D",
		"Pod '{0-pod-name}', channel '{1-cahnnel-name}': {2-message-data}")

	PodMessageData = logMessage(AuthnK8s, "PodMessageData", "CONJ00013D",
		"Pod: '{0-pod-name}', message: '{1-message-type}', data: '{2-message-data}'")

	PodError = logMessage(AuthnK8s, "PodError", "CONJ00014D",
		"Pod '{0-pod-name}' error : '{1}'")

	CopySSLToPod = logMessage(AuthnK8s, "CopySSLToPod", "CONJ00015D",
		"Copying SSL certificate to {0-pod-namespace}/{1-pod-name}")
)

/**

Util

*/

var (
	RateLimitedCacheUpdated = logMessage(Util, "RateLimitedCacheUpdated", "CONJ00016D",
		"Rate limited cache updated successfully")

	RateLimitedCacheLimitReached = logMessage(Util, "RateLimitedCacheLimitReached", "CONJ00020D",
		"Rate limited cache reached the '{0-limit}' limit and will not call target for the next '{1-seconds}' seconds")

	ConcurrencyLimitedCacheUpdated = logMessage(Util, "ConcurrencyLimitedCacheUpdated", "CONJ00021D",
		"Concurrency limited cache updated successfully")

	ConcurrencyLimitedCacheReached = logMessage(Util, "ConcurrencyLimitedCacheReached", "CONJ00022D",
		"Concurrency limited cache reached the '{0-limit}' limit and will not call target")

	ConcurrencyLimitedCacheConcurrentRequestsUpdated = logMessage(Util, "ConcurrencyLimitedCacheConcurrentRequestsUpdated", "CONJ00023D",
		"Concurrency limited cache concurrent requests updated to '{0-concurrent-requests}'")
)
