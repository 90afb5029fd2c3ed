package domain

// IdentityProvider holds the settings a web client needs to talk to its identity provider tenant.
// Values are opaque and returned exactly as they were given.
type IdentityProvider struct {
	domainPrefix string
	audience     string
	clientId     string
	callbackUrl  string
}

func NewIdentityProvider(domainPrefix, audience, clientId, callbackUrl string) IdentityProvider {
	return IdentityProvider{
		domainPrefix: domainPrefix,
		audience:     audience,
		clientId:     clientId,
		callbackUrl:  callbackUrl,
	}
}

func (idp IdentityProvider) DomainPrefix() string { return idp.domainPrefix }
func (idp IdentityProvider) Audience() string     { return idp.audience }
func (idp IdentityProvider) ClientId() string     { return idp.clientId }
func (idp IdentityProvider) CallbackUrl() string  { return idp.callbackUrl }

// Environment is the read-only deployment configuration of a web client. It has no setters, so a
// *Environment can be shared between any number of goroutines.
type Environment struct {
	production       bool
	apiServerUrl     string
	identityProvider IdentityProvider
}

func NewEnvironment(production bool, apiServerUrl string, identityProvider IdentityProvider) *Environment {
	return &Environment{
		production:       production,
		apiServerUrl:     apiServerUrl,
		identityProvider: identityProvider,
	}
}

func (e *Environment) Production() bool     { return e.production }
func (e *Environment) ApiServerUrl() string { return e.apiServerUrl }

// IdentityProvider returns a copy of the nested record.
func (e *Environment) IdentityProvider() IdentityProvider { return e.identityProvider }

const (
	KeyProduction      = "production"
	KeyApiServerUrl    = "apiServerUrl"
	KeyIdpDomainPrefix = "identityProvider.domainPrefix"
	KeyIdpAudience     = "identityProvider.audience"
	KeyIdpClientId     = "identityProvider.clientId"
	KeyIdpCallbackUrl  = "identityProvider.callbackUrl"
)

var fieldKeys = []string{
	KeyProduction,
	KeyApiServerUrl,
	KeyIdpDomainPrefix,
	KeyIdpAudience,
	KeyIdpClientId,
	KeyIdpCallbackUrl,
}

// FieldKeys lists every field of an Environment in declaration order. Each call returns a new slice.
func FieldKeys() []string {
	return append([]string(nil), fieldKeys...)
}

type Field struct {
	Key   string
	Value any
}

// Lookup returns the value of a named field. The value is a bool for KeyProduction and a string otherwise.
func (e *Environment) Lookup(key string) (any, bool) {
	switch key {
	case KeyProduction:
		return e.production, true
	case KeyApiServerUrl:
		return e.apiServerUrl, true
	case KeyIdpDomainPrefix:
		return e.identityProvider.domainPrefix, true
	case KeyIdpAudience:
		return e.identityProvider.audience, true
	case KeyIdpClientId:
		return e.identityProvider.clientId, true
	case KeyIdpCallbackUrl:
		return e.identityProvider.callbackUrl, true
	}
	return nil, false
}

func (e *Environment) Fields() []Field {
	fields := make([]Field, 0, len(fieldKeys))
	for _, key := range fieldKeys {
		value, _ := e.Lookup(key)
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields
}
