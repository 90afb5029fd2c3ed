// Package render writes an environment in the formats the web client consumes.
package render

import (
	"aggregat4/clientenv/internal/domain"
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

type Format string

const (
	FormatTypeScript Format = "ts"
	FormatJSON       Format = "json"
)

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "ts", "typescript":
		return FormatTypeScript, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

func Render(format Format, env *domain.Environment) ([]byte, error) {
	switch format {
	case FormatTypeScript:
		return []byte(TypeScript(env)), nil
	case FormatJSON:
		return JSON(env)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

const typeScriptTemplate = `// Generated by envgen, changes will be overwritten.

export const environment = {
  production: [[production]],
  apiServerUrl: [[apiServerUrl]],
  auth0: {
    url: [[domainPrefix]],
    audience: [[audience]],
    clientId: [[clientId]],
    callbackURL: [[callbackUrl]],
  }
};
`

var typeScriptEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

func quote(s string) string {
	return "'" + typeScriptEscaper.Replace(s) + "'"
}

// TypeScript renders an environment.ts module as used by Angular and Ionic clients.
func TypeScript(env *domain.Environment) string {
	idp := env.IdentityProvider()
	return fasttemplate.ExecuteString(typeScriptTemplate, "[[", "]]", map[string]interface{}{
		"production":   strconv.FormatBool(env.Production()),
		"apiServerUrl": quote(env.ApiServerUrl()),
		"domainPrefix": quote(idp.DomainPrefix()),
		"audience":     quote(idp.Audience()),
		"clientId":     quote(idp.ClientId()),
		"callbackUrl":  quote(idp.CallbackUrl()),
	})
}

type identityProviderDocument struct {
	DomainPrefix string `json:"domainPrefix"`
	Audience     string `json:"audience"`
	ClientId     string `json:"clientId"`
	CallbackUrl  string `json:"callbackUrl"`
}

type environmentDocument struct {
	Production       bool                     `json:"production"`
	ApiServerUrl     string                   `json:"apiServerUrl"`
	IdentityProvider identityProviderDocument `json:"identityProvider"`
}

func JSON(env *domain.Environment) ([]byte, error) {
	idp := env.IdentityProvider()
	doc := environmentDocument{
		Production:   env.Production(),
		ApiServerUrl: env.ApiServerUrl(),
		IdentityProvider: identityProviderDocument{
			DomainPrefix: idp.DomainPrefix(),
			Audience:     idp.Audience(),
			ClientId:     idp.ClientId(),
			CallbackUrl:  idp.CallbackUrl(),
		},
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
