package class

func init() {
	registerClasses()
}

func registerClasses() {
	registerRegistryClasses()
	registerTemplateClasses()
	registerCatalogClasses()
	registerConfigClasses()
	registerCommonClasses()
	registerDomainClasses()
}

/**

Registry

*/

// MjrRegistry is the major classification for the tracking code registry.
var MjrRegistry Major

var (
	// MnrRegistryCode is the 'MjrRegistry' minor classification for the tracking code issues.
	MnrRegistryCode Minor

	// RegistryCodeDuplicate is the 'MjrRegistry', 'MnrRegistryCode' error classification
	// when the tracking code is declared more than once.
	RegistryCodeDuplicate Class

	// RegistryCodeUnknown is the 'MjrRegistry', 'MnrRegistryCode' error classification
	// when looking up a tracking code that was never registered.
	RegistryCodeUnknown Class

	// RegistryCodeInvalid is the 'MjrRegistry', 'MnrRegistryCode' error classification
	// for malformed tracking codes.
	RegistryCodeInvalid Class

	// MnrRegistryDefinition is the 'MjrRegistry' minor classification for the definition issues.
	MnrRegistryDefinition Minor

	// RegistryDefinitionNil is the 'MjrRegistry', 'MnrRegistryDefinition' error classification
	// when registering nil definition.
	RegistryDefinitionNil Class

	// MnrRegistryState is the 'MjrRegistry' minor classification for the registry lifecycle issues.
	MnrRegistryState Minor

	// RegistryStateSealed is the 'MjrRegistry', 'MnrRegistryState' error classification
	// when registering into a sealed - read-only registry.
	RegistryStateSealed Class

	// MnrRegistryNamespace is the 'MjrRegistry' minor classification for the namespace issues.
	MnrRegistryNamespace Minor

	// RegistryNamespaceInvalid is the 'MjrRegistry', 'MnrRegistryNamespace' error classification
	// for malformed namespace paths.
	RegistryNamespaceInvalid Class

	// RegistryNamespaceConflict is the 'MjrRegistry', 'MnrRegistryNamespace' error classification
	// when a single definition is grouped under two different namespace paths.
	RegistryNamespaceConflict Class
)

func registerRegistryClasses() {
	MjrRegistry = MustRegisterMajor("Registry", "tracking code registry issues")

	MnrRegistryCode = MjrRegistry.MustRegisterMinor("Code", "tracking code issues")
	RegistryCodeDuplicate = MnrRegistryCode.MustRegisterIndex("Duplicate", "tracking code declared more than once").Class()
	RegistryCodeUnknown = MnrRegistryCode.MustRegisterIndex("Unknown", "tracking code not registered").Class()
	RegistryCodeInvalid = MnrRegistryCode.MustRegisterIndex("Invalid", "malformed tracking code").Class()

	MnrRegistryDefinition = MjrRegistry.MustRegisterMinor("Definition", "registered definition issues")
	RegistryDefinitionNil = MnrRegistryDefinition.MustRegisterIndex("Nil", "nil definition provided").Class()

	MnrRegistryState = MjrRegistry.MustRegisterMinor("State", "registry lifecycle issues")
	RegistryStateSealed = MnrRegistryState.MustRegisterIndex("Sealed", "registry is read-only").Class()

	MnrRegistryNamespace = MjrRegistry.MustRegisterMinor("Namespace", "namespace grouping issues")
	RegistryNamespaceInvalid = MnrRegistryNamespace.MustRegisterIndex("Invalid", "malformed namespace path").Class()
	RegistryNamespaceConflict = MnrRegistryNamespace.MustRegisterIndex("Conflict", "definition grouped under two namespaces").Class()
}

/**

Template

*/

// MjrTemplate is the major classification for the message templates.
var MjrTemplate Major

var (
	// MnrTemplateParse is the 'MjrTemplate' minor classification for template parsing.
	MnrTemplateParse Minor

	// TemplateParseIndex is the 'MjrTemplate', 'MnrTemplateParse' error classification
	// for placeholder indexes out of the supported range.
	TemplateParseIndex Class

	// MnrTemplateRender is the 'MjrTemplate' minor classification for template rendering.
	MnrTemplateRender Minor

	// TemplateRenderArgumentMismatch is the 'MjrTemplate', 'MnrTemplateRender' error classification
	// when the number of provided arguments doesn't match template placeholders.
	TemplateRenderArgumentMismatch Class
)

func registerTemplateClasses() {
	MjrTemplate = MustRegisterMajor("Template", "message template issues")

	MnrTemplateParse = MjrTemplate.MustRegisterMinor("Parse", "parsing template placeholders")
	TemplateParseIndex = MnrTemplateParse.MustRegisterIndex("Index", "placeholder index out of range").Class()

	MnrTemplateRender = MjrTemplate.MustRegisterMinor("Render", "rendering template with arguments")
	TemplateRenderArgumentMismatch = MnrTemplateRender.MustRegisterIndex("Argument Mismatch", "arguments don't match placeholders").Class()
}

/**

Catalog

*/

// MjrCatalog is the major classification for the catalog declarations.
var MjrCatalog Major

var (
	// MnrCatalogDeclaration is the 'MjrCatalog' minor classification for declaration issues.
	MnrCatalogDeclaration Minor

	// CatalogDeclarationInvalid is the 'MjrCatalog', 'MnrCatalogDeclaration' error classification
	// for declarations that fail validation.
	CatalogDeclarationInvalid Class

	// MnrCatalogFile is the 'MjrCatalog' minor classification for catalog file issues.
	MnrCatalogFile Minor

	// CatalogFileRead is the 'MjrCatalog', 'MnrCatalogFile' error classification
	// when a catalog file can't be read.
	CatalogFileRead Class

	// CatalogFileFormat is the 'MjrCatalog', 'MnrCatalogFile' error classification
	// for unsupported or malformed catalog file formats.
	CatalogFileFormat Class

	// CatalogFileEncode is the 'MjrCatalog', 'MnrCatalogFile' error classification
	// when exporting the catalog fails.
	CatalogFileEncode Class
)

func registerCatalogClasses() {
	MjrCatalog = MustRegisterMajor("Catalog", "catalog declaration issues")

	MnrCatalogDeclaration = MjrCatalog.MustRegisterMinor("Declaration", "catalog declaration issues")
	CatalogDeclarationInvalid = MnrCatalogDeclaration.MustRegisterIndex("Invalid", "declaration validation failed").Class()

	MnrCatalogFile = MjrCatalog.MustRegisterMinor("File", "catalog file issues")
	CatalogFileRead = MnrCatalogFile.MustRegisterIndex("Read", "reading catalog file failed").Class()
	CatalogFileFormat = MnrCatalogFile.MustRegisterIndex("Format", "unsupported or malformed catalog file").Class()
	CatalogFileEncode = MnrCatalogFile.MustRegisterIndex("Encode", "encoding catalog failed").Class()
}

/**

Config

*/

// MjrConfig is the major classification for the configuration.
var MjrConfig Major

var (
	// MnrConfigRead is the 'MjrConfig' minor classification for the config read issues.
	MnrConfigRead Minor

	// ConfigReadNotFound is the 'MjrConfig', 'MnrConfigRead' error classification
	// for the read config not found issue.
	ConfigReadNotFound Class

	// ConfigReadFormat is the 'MjrConfig', 'MnrConfigRead' error classification
	// when the config can't be decoded.
	ConfigReadFormat Class

	// MnrConfigValue is the 'MjrConfig' minor classification for the config value issues.
	MnrConfigValue Minor

	// ConfigValueNil is the 'MjrConfig', 'MnrConfigValue' error classification
	// for the nil config value.
	ConfigValueNil Class

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error classification
	// for config validation failures.
	ConfigValueInvalid Class

	// MnrConfigEnv is the 'MjrConfig' minor classification for the environment variables.
	MnrConfigEnv Minor

	// ConfigEnvMissing is the 'MjrConfig', 'MnrConfigEnv' error classification
	// when a required environment variable is not set.
	ConfigEnvMissing Class
)

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "config related issues")

	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "config read issues")
	ConfigReadNotFound = MnrConfigRead.MustRegisterIndex("Not Found", "config not found while reading").Class()
	ConfigReadFormat = MnrConfigRead.MustRegisterIndex("Format", "decoding config failed").Class()

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "config value issues")
	ConfigValueNil = MnrConfigValue.MustRegisterIndex("Nil", "provided nil config value").Class()
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "validating config failed").Class()

	MnrConfigEnv = MjrConfig.MustRegisterMinor("Env", "environment variable issues")
	ConfigEnvMissing = MnrConfigEnv.MustRegisterIndex("Missing", "required environment variable not set").Class()
}

/**

Common

*/

// MjrCommon is the common major errors classification.
var MjrCommon Major

var (
	// MnrCommonLogger is the 'MjrCommon' minor error classification for logger issues.
	MnrCommonLogger Minor

	// CommonLoggerNotImplement is the 'MjrCommon', 'MnrCommonLogger' error classification
	// for loggers that doesn't implement some interface.
	CommonLoggerNotImplement Class

	// CommonLoggerUnknownLevel is the 'MjrCommon', 'MnrCommonLogger' error classification
	// for unknown level logger.
	CommonLoggerUnknownLevel Class
)

func registerCommonClasses() {
	MjrCommon = MustRegisterMajor("Common", "common error classification")

	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger", "common logger issues")
	CommonLoggerNotImplement = MnrCommonLogger.MustRegisterIndex("Not Implement", "logger doesn't implement some interface").Class()
	CommonLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level", "unknown level issue").Class()
}

/**

Domain

*/

// MjrDomain is the major classification for errors raised from error definitions.
var MjrDomain Major

var (
	// MnrDomainRaised is the 'MjrDomain' minor classification for raised errors.
	MnrDomainRaised Minor

	// DomainRaised is the 'MjrDomain', 'MnrDomainRaised' minor classification used by
	// error definitions with no explicit class.
	DomainRaised Class

	// DomainRaisedAuthentication is the 'MjrDomain', 'MnrDomainRaised' error classification
	// for the authentication flow failures.
	DomainRaisedAuthentication Class
)

func registerDomainClasses() {
	MjrDomain = MustRegisterMajor("Domain", "errors raised from error definitions")

	MnrDomainRaised = MjrDomain.MustRegisterMinor("Raised", "raised domain errors")
	DomainRaised = MustNewMinorClass(MnrDomainRaised)
	DomainRaisedAuthentication = MnrDomainRaised.MustRegisterIndex("Authentication", "authentication flow failures").Class()
}
