// Package catalog declares the trackable log messages and error definitions of the
// authentication service. The declarations are grouped by the namespaces of the subsystems
// that emit them. Initialize registers the whole catalog within the default registry once
// at the process startup.
//
// Additional declarations might be loaded from the toml, yaml or json catalog files:
//
//	[[entries]]
//	kind = "message"
//	namespace = "LogMessages/Authentication/AuthnLdap"
//	name = "LdapBindSucceeded"
//	code = "CONJ00101D"
//	template = "Bind as '{0-bind-dn}' succeeded"
package catalog
